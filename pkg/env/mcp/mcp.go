package mcp

import (
	"os"
	"strings"

	"github.com/app-sre/invprobe/pkg/env"
	"github.com/app-sre/invprobe/pkg/inventory"
)

type Env struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

func NewMCPEnv() *Env {
	return &Env{}
}

func (m *Env) Populate() error {
	if err := m.PopulateBaseURL(); err != nil {
		return err
	}

	return m.PopulateCredentials()
}

// PopulateBaseURL reads only the service location. Unauthenticated
// endpoints need nothing else.
func (m *Env) PopulateBaseURL() error {
	baseURL := strings.TrimSpace(os.Getenv("MCP_BASE_URL"))
	if baseURL == "" {
		return &env.Error{Name: "MCP_BASE_URL"}
	}
	m.BaseURL = baseURL

	return nil
}

// PopulateCredentials reads only the client credentials. The fixture server
// needs these without a base URL.
func (m *Env) PopulateCredentials() error {
	clientID := os.Getenv("MCP_CLIENT_ID")
	if clientID == "" {
		return &env.Error{Name: "MCP_CLIENT_ID"}
	}
	m.ClientID = clientID

	clientSecret := os.Getenv("MCP_CLIENT_SECRET")
	if clientSecret == "" {
		return &env.Error{Name: "MCP_CLIENT_SECRET"}
	}
	m.ClientSecret = clientSecret

	return nil
}

func (m *Env) Credentials() inventory.Credentials {
	return inventory.Credentials{
		ClientID:     m.ClientID,
		ClientSecret: m.ClientSecret,
	}
}
