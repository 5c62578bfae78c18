// Package playbook loads a YAML file of catalog queries and runs them in
// order.
package playbook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mamercad/clickops/internal/modules"
	"github.com/mamercad/clickops/internal/types"
)

// Playbook describes the list of queries in a query file.
type Playbook struct {
	Queries []types.QueryDefinition `yaml:"queries"`
}

// Load reads and parses a query file, then validates every query against the
// module registry before anything runs.
func Load(path string) (*Playbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}

	var pb Playbook
	if err := yaml.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("failed to parse query file: %w", err)
	}

	if len(pb.Queries) == 0 {
		return nil, fmt.Errorf("query file %s contains no queries", path)
	}

	for i, q := range pb.Queries {
		if q.Module == "" {
			return nil, fmt.Errorf("query %d (%q): missing module", i, q.Name)
		}
		m, ok := modules.Get(q.Module)
		if !ok {
			return nil, fmt.Errorf("query %d (%q): unknown module %q (available: %s)",
				i, q.Name, q.Module, strings.Join(modules.Names(), ", "))
		}
		if err := m.Validate(q); err != nil {
			return nil, fmt.Errorf("query %d (%q): %w", i, q.Name, err)
		}
	}

	return &pb, nil
}

// Runner executes a playbook's queries against one catalog.
type Runner struct {
	Catalog modules.Catalog
	Logger  *slog.Logger
}

// Run executes every query in order and returns the results. Queries are
// read-only, so a failed result does not stop the run.
func (r *Runner) Run(ctx context.Context, pb *Playbook) []types.ModuleResult {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]types.ModuleResult, 0, len(pb.Queries))
	for _, q := range pb.Queries {
		m, ok := modules.Get(q.Module)
		if !ok {
			// Load validated the registry lookup already.
			results = append(results, types.ModuleResult{
				QueryName: q.Name,
				Module:    q.Module,
				Failed:    true,
				Msg:       fmt.Sprintf("unknown module %q", q.Module),
			})
			continue
		}

		logger.Debug("running query", "name", q.Name, "module", q.Module, "type", q.Type)
		res := m.Run(ctx, r.Catalog, q)
		res.QueryName = q.Name
		res.Module = q.Module
		if res.Failed {
			logger.Warn("query failed", "name", q.Name, "msg", res.Msg)
		} else {
			logger.Debug("query succeeded", "name", q.Name, "one_clicks", len(res.OneClicks))
		}
		results = append(results, res)
	}
	return results
}
