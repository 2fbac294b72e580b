package feature

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// assets holds every file template feature handlers write, plus the
// provider registry data.
//
//go:embed templates providers.yaml
var assets embed.FS

// Provider is a database provider choice for the drizzle feature.
// Providers are data, not code: the set lives in providers.yaml and each
// entry points at its template payloads by convention
// (templates/drizzle/{connection,env,example}/<id> and the entity-keyed
// schema and API route templates).
type Provider struct {
	// ID is the stable identifier, also the template file key.
	ID string `yaml:"id"`

	// Name is the human-readable display name.
	Name string `yaml:"name"`

	// Description annotates the provider in the selection prompt.
	Description string `yaml:"description"`

	// EnvVar is the environment variable the connection code expects.
	EnvVar string `yaml:"envVar"`

	// Driver names the drizzle driver, shown in the summary output.
	Driver string `yaml:"driver"`

	// Entities selects the schema shape: "users" for the shared
	// users/posts schema, "tenants" for the multi-tenant variant.
	Entities string `yaml:"entities"`

	// Dependencies are the runtime packages to install.
	Dependencies []string `yaml:"dependencies"`

	// DevDependencies are the development packages to install.
	DevDependencies []string `yaml:"devDependencies"`

	// ConfigNote is an optional comment block appended to the generated
	// drizzle.config.ts.
	ConfigNote string `yaml:"configNote"`

	// NeedsClient marks providers whose generated client needs a
	// placeholder file (xata).
	NeedsClient bool `yaml:"needsClient"`
}

// providerFile is the on-disk shape of providers.yaml.
type providerFile struct {
	Providers []Provider `yaml:"providers"`
}

var (
	providersOnce sync.Once
	providersList []Provider
	providersErr  error
)

// Providers returns the provider registry in prompt order.
// The registry is parsed from the embedded providers.yaml once.
func Providers() ([]Provider, error) {
	providersOnce.Do(func() {
		providersList, providersErr = loadProviders()
	})
	return providersList, providersErr
}

// loadProviders parses and validates the embedded registry.
func loadProviders() ([]Provider, error) {
	data, err := assets.ReadFile("providers.yaml")
	if err != nil {
		return nil, fmt.Errorf("read provider registry: %w", err)
	}

	var file providerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse provider registry: %w", err)
	}

	for _, p := range file.Providers {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	return file.Providers, nil
}

// lookupProvider resolves a provider by ID.
func lookupProvider(id string) (Provider, error) {
	providers, err := Providers()
	if err != nil {
		return Provider{}, err
	}
	for _, p := range providers {
		if p.ID == id {
			return p, nil
		}
	}
	return Provider{}, fmt.Errorf("unknown database provider: %q", id)
}

// validate checks that the provider defines every payload the drizzle
// handler consumes, so a malformed registry entry fails at load time
// rather than midway through an install.
func (p Provider) validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("provider registry: entry without id")
	case p.Name == "", p.Description == "", p.EnvVar == "", p.Driver == "":
		return fmt.Errorf("provider %s: missing display or connection metadata", p.ID)
	case len(p.Dependencies) == 0, len(p.DevDependencies) == 0:
		return fmt.Errorf("provider %s: missing dependency lists", p.ID)
	case p.Entities != "users" && p.Entities != "tenants":
		return fmt.Errorf("provider %s: entities must be users or tenants, got %q", p.ID, p.Entities)
	}

	// Every referenced template must exist in the embedded FS.
	for _, name := range []string{
		p.connectionTemplate(),
		p.envTemplate(),
		p.exampleTemplate(),
		p.schemaTemplate(),
		p.apiRouteTemplate(true),
		p.apiRouteTemplate(false),
	} {
		if _, err := assets.ReadFile(name); err != nil {
			return fmt.Errorf("provider %s: missing template %s", p.ID, name)
		}
	}
	return nil
}

func (p Provider) connectionTemplate() string {
	return "templates/drizzle/connection/" + p.ID + ".ts"
}

func (p Provider) envTemplate() string {
	return "templates/drizzle/env/" + p.ID + ".env"
}

func (p Provider) exampleTemplate() string {
	return "templates/drizzle/example/" + p.ID + ".ts"
}

func (p Provider) schemaTemplate() string {
	if p.Entities == "tenants" {
		return "templates/drizzle/schema/nile.ts"
	}
	return "templates/drizzle/schema/default.ts"
}

func (p Provider) apiRouteTemplate(appRouter bool) string {
	kind := "pages"
	if appRouter {
		kind = "route"
	}
	return fmt.Sprintf("templates/drizzle/api/%s_%s.ts", kind, p.Entities)
}
