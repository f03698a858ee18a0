// plugins/shapecount/shapecount.go
package shapecount

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bethropolis/easel/internal/plugin"
)

// Ensure ShapeCount implements plugin.Plugin
var _ plugin.Plugin = (*ShapeCount)(nil)

// ShapeCount reports how many shapes are on the canvas.
type ShapeCount struct {
	api plugin.CanvasAPI
}

// New creates a new instance of the ShapeCount plugin.
func New() plugin.Plugin {
	return &ShapeCount{}
}

// Name returns the unique name of the plugin.
func (p *ShapeCount) Name() string {
	return "shapecount"
}

// Initialize registers the count and depth commands.
func (p *ShapeCount) Initialize(api plugin.CanvasAPI) error {
	p.api = api
	if err := api.RegisterCommand("count", p.executeCount); err != nil {
		return fmt.Errorf("failed to register 'count' command: %w", err)
	}
	if err := api.RegisterCommand("depth", p.executeDepth); err != nil {
		return fmt.Errorf("failed to register 'depth' command: %w", err)
	}
	return nil
}

// executeDepth shows how many snapshots the history retains.
func (p *ShapeCount) executeDepth(args []string) error {
	if p.api == nil {
		return fmt.Errorf("shapecount plugin not initialized with API")
	}
	p.api.SetStatusMessage("History: %d snapshot(s) (%s)", p.api.GetHistoryDepth(), p.api.GetHistoryKind())
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *ShapeCount) Shutdown() error {
	return nil
}

// executeCount shows total and distinct shapes. With arguments, it counts
// only those labels instead.
func (p *ShapeCount) executeCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("shapecount plugin not initialized with API")
	}

	counts := countShapes(p.api.GetShapes())
	if len(args) > 0 {
		parts := make([]string, 0, len(args))
		for _, label := range args {
			parts = append(parts, fmt.Sprintf("%s=%d", label, counts[label]))
		}
		p.api.SetStatusMessage("Counts: %s", strings.Join(parts, ", "))
		return nil
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	p.api.SetStatusMessage("Shapes: %d, Distinct: %d (%s)", total, len(counts), summarize(counts))
	return nil
}

func countShapes(shapes []string) map[string]int {
	counts := make(map[string]int, len(shapes))
	for _, s := range shapes {
		counts[s]++
	}
	return counts
}

// summarize lists label counts, most frequent first, ties alphabetical.
func summarize(counts map[string]int) string {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%d", l, counts[l]))
	}
	return strings.Join(parts, ", ")
}
