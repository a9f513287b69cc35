package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/docking/internal/application/usecase"
	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/ui/layout"
)

// DockOp docks one named panel. It is written NAME[@TARGET][:ZONE[:RATIO]].
type DockOp struct {
	Name    string
	Target  string // panel to split; empty means the previous panel
	Zone    entity.DockZone
	HasZone bool
	Ratio   float64 // zero uses the configured default
}

// ParseDockOp parses a single dock operation.
func ParseDockOp(s string) (DockOp, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return DockOp{}, fmt.Errorf("invalid dock op %q: expected NAME[@TARGET][:ZONE[:RATIO]]", s)
	}

	var op DockOp
	op.Name, op.Target, _ = strings.Cut(parts[0], "@")
	if op.Name == "" {
		return DockOp{}, fmt.Errorf("invalid dock op %q: panel name is empty", s)
	}
	if strings.Contains(parts[0], "@") && op.Target == "" {
		return DockOp{}, fmt.Errorf("invalid dock op %q: target name is empty", s)
	}

	if len(parts) > 1 {
		zone, ok := entity.ParseDockZone(parts[1])
		if !ok {
			return DockOp{}, fmt.Errorf("invalid dock op %q: unknown zone %q", s, parts[1])
		}
		op.Zone, op.HasZone = zone, true
	}

	if len(parts) > 2 {
		ratio, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || ratio <= 0 || ratio >= 1 {
			return DockOp{}, fmt.Errorf("invalid dock op %q: ratio must be between 0 and 1", s)
		}
		op.Ratio = ratio
	}

	return op, nil
}

// ParseDockOps parses every argument with ParseDockOp.
func ParseDockOps(args []string) ([]DockOp, error) {
	ops := make([]DockOp, 0, len(args))
	for _, arg := range args {
		op, err := ParseDockOp(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ParseSize parses WIDTHxHEIGHT.
func ParseSize(s string) (entity.Vec2, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return entity.Vec2{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}
	width, werr := strconv.ParseFloat(w, 64)
	height, herr := strconv.ParseFloat(h, 64)
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return entity.Vec2{}, fmt.Errorf("invalid size %q: width and height must be positive numbers", s)
	}
	return entity.Vec2{X: width, Y: height}, nil
}

// ParseRect parses X,Y,WIDTH,HEIGHT.
func ParseRect(s string) (entity.Rect, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return entity.Rect{}, fmt.Errorf("invalid rectangle %q: expected X,Y,WIDTH,HEIGHT", s)
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return entity.Rect{}, fmt.Errorf("invalid rectangle %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return entity.Rect{}, fmt.Errorf("invalid rectangle %q: negative size", s)
	}
	return entity.NewRect(v[0], v[1], v[2], v[3]), nil
}

// BuildLayout docks one panel per op into a new container, then detaches
// the named panels.
func BuildLayout(
	ctx context.Context,
	docks *usecase.ManageDocksUseCase,
	name string,
	bounds entity.Rect,
	ops []DockOp,
	detach []string,
) (*entity.DockContainer, error) {
	container := docks.NewContainer(ctx, name, bounds)
	panels := make(map[string]*layout.Panel, len(ops))

	var previous *layout.Panel
	for _, op := range ops {
		if _, exists := panels[op.Name]; exists {
			return nil, fmt.Errorf("panel %q is docked twice", op.Name)
		}

		input := usecase.AttachInput{
			Container: container,
			Zone:      op.Zone,
			Ratio:     op.Ratio,
		}

		target := previous
		if op.Target != "" {
			target = panels[op.Target]
			if target == nil || !target.IsDocked() {
				return nil, fmt.Errorf("panel %q: target %q is not docked", op.Name, op.Target)
			}
		}
		if target != nil && target.IsDocked() {
			input.Target = target.DockState().Leaf()
			if !op.HasZone {
				input.Zone = entity.ZoneRight
			}
		}

		panel := layout.NewPanel(op.Name, name)
		input.Widget = panel
		out, err := docks.Attach(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", op.Name, err)
		}
		if displaced, ok := out.Displaced.(*layout.Panel); ok && displaced != nil {
			delete(panels, displaced.Title())
		}

		panels[op.Name] = panel
		previous = panel
	}

	for _, title := range detach {
		panel := panels[title]
		if panel == nil {
			return nil, fmt.Errorf("cannot detach %q: no such panel", title)
		}
		if err := docks.Detach(ctx, container, panel); err != nil {
			return nil, fmt.Errorf("detach %q: %w", title, err)
		}
		delete(panels, title)
	}

	return container, nil
}
