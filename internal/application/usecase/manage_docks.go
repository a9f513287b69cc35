package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bnema/docking/internal/domain/entity"
	"github.com/bnema/docking/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ResizeDirection indicates the direction for keyboard splitter moves.
type ResizeDirection string

const (
	ResizeIncreaseLeft  ResizeDirection = "increase_left"
	ResizeIncreaseRight ResizeDirection = "increase_right"
	ResizeIncreaseUp    ResizeDirection = "increase_up"
	ResizeIncreaseDown  ResizeDirection = "increase_down"

	ResizeDecreaseLeft  ResizeDirection = "decrease_left"
	ResizeDecreaseRight ResizeDirection = "decrease_right"
	ResizeDecreaseUp    ResizeDirection = "decrease_up"
	ResizeDecreaseDown  ResizeDirection = "decrease_down"

	ResizeIncrease ResizeDirection = "increase"
	ResizeDecrease ResizeDirection = "decrease"
)

var (
	ErrNothingToResize = errors.New("nothing to resize")
	ErrNoDropTarget    = errors.New("no dock leaf under cursor")
)

// DockDefaults holds the configured split ratios.
type DockDefaults struct {
	SplitRatio    float64
	MinSplitRatio float64
}

// ManageDocksUseCase handles dock tree operations.
type ManageDocksUseCase struct {
	idGenerator IDGenerator
	defaults    DockDefaults
}

// NewManageDocksUseCase creates a new dock management use case.
func NewManageDocksUseCase(idGenerator IDGenerator, defaults DockDefaults) *ManageDocksUseCase {
	if defaults.SplitRatio <= 0 || defaults.SplitRatio >= 1 {
		defaults.SplitRatio = entity.DefaultSplitRatio
	}
	return &ManageDocksUseCase{
		idGenerator: idGenerator,
		defaults:    defaults,
	}
}

// NewContainer creates a dock container laid out at bounds.
func (uc *ManageDocksUseCase) NewContainer(ctx context.Context, name string, bounds entity.Rect) *entity.DockContainer {
	opts := []entity.DockContainerOption{entity.WithMinSplitRatio(uc.defaults.MinSplitRatio)}
	if uc.idGenerator != nil {
		opts = append(opts, entity.WithIDGenerator(entity.IDGenerator(uc.idGenerator)))
	}

	container := entity.NewDockContainer(name, opts...)
	container.SetBounds(bounds)

	logging.FromContext(ctx).Debug().
		Str("container_id", container.ID()).
		Str("name", name).
		Float64("width", bounds.Width()).
		Float64("height", bounds.Height()).
		Msg("dock container created")

	return container
}

// AttachInput contains parameters for docking a widget.
type AttachInput struct {
	Container *entity.DockContainer
	Widget    entity.DockWidget
	Target    *entity.DockNode // leaf to dock into; nil means the root
	Zone      entity.DockZone
	Ratio     float64 // fraction for child 0; zero uses the configured default
}

// AttachOutput contains the result of an attach.
type AttachOutput struct {
	Leaf      *entity.DockNode  // leaf now holding the widget
	Split     *entity.DockNode  // node that became a split, nil for center docks
	Displaced entity.DockWidget // previous occupant undocked by a center dock
}

// Attach docks a widget into the target leaf.
func (uc *ManageDocksUseCase) Attach(ctx context.Context, input AttachInput) (*AttachOutput, error) {
	log := logging.FromContext(ctx)
	if input.Container == nil {
		return nil, fmt.Errorf("dock container is required")
	}

	target := input.Target
	if target == nil {
		target = input.Container.Root()
	}
	if err := input.Container.ValidateAttach(input.Widget, target); err != nil {
		log.Warn().Err(err).Str("zone", input.Zone.String()).Msg("attach rejected")
		return nil, fmt.Errorf("attach to %s: %w", input.Container.Name(), err)
	}

	ratio := input.Ratio
	if ratio == 0 {
		ratio = uc.defaults.SplitRatio
	}

	previous := target.Widget()
	leaf := input.Container.AttachWidget(input.Widget, target, input.Zone, ratio)
	if leaf == nil {
		return nil, fmt.Errorf("attach to %s: widget was not docked", input.Container.Name())
	}

	output := &AttachOutput{Leaf: leaf}
	if target.IsSplit() {
		output.Split = target
	} else if previous != nil && previous != input.Widget {
		output.Displaced = previous
	}

	log.Info().
		Str("container_id", input.Container.ID()).
		Str("leaf_id", leaf.ID()).
		Str("zone", input.Zone.String()).
		Float64("ratio", target.SplitRatio()).
		Msg("widget docked")

	return output, nil
}

// Detach undocks a widget and compacts the tree.
func (uc *ManageDocksUseCase) Detach(ctx context.Context, container *entity.DockContainer, widget entity.DockWidget) error {
	log := logging.FromContext(ctx)
	if container == nil {
		return fmt.Errorf("dock container is required")
	}
	if err := container.ValidateDetach(widget); err != nil {
		log.Warn().Err(err).Msg("detach rejected")
		return fmt.Errorf("detach from %s: %w", container.Name(), err)
	}

	leafID := widget.DockState().Leaf().ID()
	if !container.DetachWidget(widget) {
		return fmt.Errorf("detach from %s: widget was not undocked", container.Name())
	}

	log.Info().
		Str("container_id", container.ID()).
		Str("leaf_id", leafID).
		Int("leaves", container.LeafCount()).
		Msg("widget undocked")

	return nil
}

// DetachLeaf removes a leaf and returns its former occupant, which may be nil.
func (uc *ManageDocksUseCase) DetachLeaf(
	ctx context.Context,
	container *entity.DockContainer,
	leaf *entity.DockNode,
) (entity.DockWidget, error) {
	if container == nil {
		return nil, fmt.Errorf("dock container is required")
	}
	if leaf == nil {
		return nil, fmt.Errorf("detach leaf: %w", entity.ErrNilLeaf)
	}

	leafID := leaf.ID()
	widget, ok := container.DetachLeaf(leaf)
	if !ok {
		if !leaf.IsLeaf() {
			return nil, fmt.Errorf("detach leaf %s: %w", leafID, entity.ErrNotLeaf)
		}
		return nil, fmt.Errorf("detach leaf %s: %w", leafID, entity.ErrNodeNotOwned)
	}

	logging.FromContext(ctx).Info().
		Str("container_id", container.ID()).
		Str("leaf_id", leafID).
		Bool("had_widget", widget != nil).
		Msg("leaf removed")

	return widget, nil
}

// DropInput contains parameters for dropping a dragged widget.
type DropInput struct {
	Container *entity.DockContainer
	Widget    entity.DockWidget
	Cursor    entity.Vec2
	Ratio     float64
}

// DropOutput contains the result of a drop.
type DropOutput struct {
	Placement entity.Placement
	Leaf      *entity.DockNode
	Displaced entity.DockWidget
	Moved     bool // false when the widget was dropped onto its own leaf
}

// DropAt docks a dragged widget where the cursor points, using the zone
// the user was shown before the drop. A widget already docked in the
// container is detached first.
func (uc *ManageDocksUseCase) DropAt(ctx context.Context, input DropInput) (*DropOutput, error) {
	log := logging.FromContext(ctx)
	if input.Container == nil {
		return nil, fmt.Errorf("dock container is required")
	}
	if input.Widget == nil {
		return nil, fmt.Errorf("drop: %w", entity.ErrNilWidget)
	}

	c := input.Container
	x, y := input.Cursor.X, input.Cursor.Y
	placement := c.PlacementAt(x, y)
	if !placement.OK() {
		return nil, ErrNoDropTarget
	}

	state := input.Widget.DockState()
	if state.IsDocked() {
		if state.Leaf() == placement.Leaf {
			log.Debug().Str("leaf_id", placement.Leaf.ID()).Msg("dropped onto own leaf")
			return &DropOutput{Placement: placement, Leaf: placement.Leaf}, nil
		}
		if err := uc.Detach(ctx, c, input.Widget); err != nil {
			return nil, err
		}
		// Compaction may move the target's occupant into its parent node.
		// The previewed zone stays; only the leaf is traced again.
		leaf := c.TraceLeaf(x, y)
		if leaf == nil {
			return nil, ErrNoDropTarget
		}
		placement.Leaf = leaf
	}

	attached, err := uc.Attach(ctx, AttachInput{
		Container: c,
		Widget:    input.Widget,
		Target:    placement.Leaf,
		Zone:      placement.Zone,
		Ratio:     input.Ratio,
	})
	if err != nil {
		return nil, err
	}

	return &DropOutput{
		Placement: placement,
		Leaf:      attached.Leaf,
		Displaced: attached.Displaced,
		Moved:     true,
	}, nil
}

// Resize moves the nearest splitter on the axis of dir by stepPercent of
// the split's extent. ResizeIncrease and ResizeDecrease grow or shrink the
// given leaf along whichever split encloses it first.
func (uc *ManageDocksUseCase) Resize(
	ctx context.Context,
	container *entity.DockContainer,
	leaf *entity.DockNode,
	dir ResizeDirection,
	stepPercent float64,
) error {
	log := logging.FromContext(ctx)
	if uc == nil {
		return fmt.Errorf("manage docks use case is nil")
	}
	if container == nil {
		return fmt.Errorf("dock container is required")
	}
	if leaf == nil {
		return fmt.Errorf("leaf is required")
	}
	if container.Root().IsLeaf() {
		return ErrNothingToResize
	}

	actualDir := dir
	switch dir {
	case ResizeIncrease:
		actualDir = findSmartResizeDirection(container, leaf, true)
	case ResizeDecrease:
		actualDir = findSmartResizeDirection(container, leaf, false)
	}

	axis, ok := axisForResizeDirection(actualDir)
	if !ok {
		return ErrNothingToResize
	}

	split := findNearestSplitForAxis(container, leaf, axis)
	if split == nil {
		return ErrNothingToResize
	}

	// The ratio is the share of child 0 (left/top), so moving the
	// splitter right or down increases it.
	oldRatio := split.SplitRatio()
	container.SetSplitRatio(split, oldRatio+deltaForDividerMove(actualDir, stepPercent))

	log.Debug().
		Str("direction", string(dir)).
		Str("actual_direction", string(actualDir)).
		Str("split_id", split.ID()).
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", split.SplitRatio()).
		Msg("splitter moved")

	return nil
}

// SetSplitRatioInput identifies a split by id.
type SetSplitRatioInput struct {
	Container   *entity.DockContainer
	SplitNodeID string
	Ratio       float64
}

// SetSplitRatio assigns a rounded, clamped ratio to the split with the given id.
func (uc *ManageDocksUseCase) SetSplitRatio(ctx context.Context, input SetSplitRatioInput) error {
	if input.Container == nil {
		return fmt.Errorf("dock container is required")
	}
	if input.SplitNodeID == "" {
		return fmt.Errorf("split node id is required")
	}

	split := FindNode(input.Container, input.SplitNodeID)
	if split == nil || !split.IsSplit() {
		return fmt.Errorf("split node not found: %s", input.SplitNodeID)
	}

	oldRatio := split.SplitRatio()
	input.Container.SetSplitRatio(split, roundSplitRatio(input.Ratio))

	logging.FromContext(ctx).Debug().
		Str("split_node_id", input.SplitNodeID).
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", split.SplitRatio()).
		Msg("split ratio set")

	return nil
}

// FindNode returns the node with the given id, or nil.
func FindNode(container *entity.DockContainer, id string) *entity.DockNode {
	var found *entity.DockNode
	container.Walk(func(node *entity.DockNode) bool {
		if node.ID() == id {
			found = node
			return false
		}
		return true
	})
	return found
}

type resizeAxis int

const (
	resizeAxisNone resizeAxis = iota
	resizeAxisX               // splitter between side-by-side children
	resizeAxisY               // splitter between stacked children
)

func findSmartResizeDirection(container *entity.DockContainer, leaf *entity.DockNode, grow bool) ResizeDirection {
	parent := container.Parent(leaf)
	if parent == nil {
		return ""
	}

	// Growing child 0 means increasing the ratio.
	increase := parent.Child(0) == leaf
	if !grow {
		increase = !increase
	}

	if parent.Kind() == entity.DockSplitVertical {
		if increase {
			return ResizeIncreaseRight
		}
		return ResizeIncreaseLeft
	}
	if increase {
		return ResizeIncreaseDown
	}
	return ResizeIncreaseUp
}

func axisForResizeDirection(dir ResizeDirection) (resizeAxis, bool) {
	switch dir {
	case ResizeIncreaseLeft, ResizeIncreaseRight, ResizeDecreaseLeft, ResizeDecreaseRight:
		return resizeAxisX, true
	case ResizeIncreaseUp, ResizeIncreaseDown, ResizeDecreaseUp, ResizeDecreaseDown:
		return resizeAxisY, true
	default:
		return resizeAxisNone, false
	}
}

func deltaForDividerMove(dir ResizeDirection, stepPercent float64) float64 {
	delta := math.Abs(stepPercent) / 100.0

	switch dir {
	case ResizeIncreaseRight, ResizeIncreaseDown, ResizeDecreaseLeft, ResizeDecreaseUp:
		return delta
	case ResizeIncreaseLeft, ResizeIncreaseUp, ResizeDecreaseRight, ResizeDecreaseDown:
		return -delta
	default:
		return 0
	}
}

// findNearestSplitForAxis walks up the tree to find the nearest split matching the axis.
func findNearestSplitForAxis(container *entity.DockContainer, node *entity.DockNode, axis resizeAxis) *entity.DockNode {
	want := entity.DockSplitVertical
	if axis == resizeAxisY {
		want = entity.DockSplitHorizontal
	}
	for parent := container.Parent(node); parent != nil; parent = container.Parent(parent) {
		if parent.Kind() == want {
			return parent
		}
	}
	return nil
}

const splitRatioRoundFactor = 100.0

func roundSplitRatio(ratio float64) float64 {
	return math.Round(ratio*splitRatioRoundFactor) / splitRatioRoundFactor
}
