// Package server assembles the MCP server: NWS client, tool registration,
// and the stdio transport.
package server

import (
	"context"
	"fmt"

	"github.com/miyamo2/qilin"

	"github.com/mwiater/nimbus/internal/appconfig"
	"github.com/mwiater/nimbus/internal/logging"
	"github.com/mwiater/nimbus/internal/nws"
	"github.com/mwiater/nimbus/internal/tools"
)

// Name is the server name advertised to MCP clients during initialize.
const Name = "nimbus"

// New builds a qilin server with both weather tools registered.
func New(cfg *appconfig.Config, version string) (*qilin.Qilin, error) {
	q := qilin.New(Name, qilin.WithVersion(version))

	client := nws.NewClient(
		cfg.APIBaseURL(),
		cfg.UserAgentString(),
		cfg.RequestTimeout(),
		logging.Logger().With().Str("component", "nws").Logger(),
	)
	if err := tools.Register(q, client); err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}
	return q, nil
}

// Run builds the server and serves MCP over stdio until the client closes
// the stream or ctx is cancelled. A non-nil return means the transport
// could not be established or failed; the caller exits non-zero.
func Run(ctx context.Context, cfg *appconfig.Config, version string) error {
	q, err := New(cfg, version)
	if err != nil {
		return err
	}

	logging.LogEvent("nimbus MCP server listening on stdio (api=%s)", cfg.APIBaseURL())
	if err := q.Start(qilin.StartWithContext(ctx)); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
