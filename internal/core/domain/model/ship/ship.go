package ship

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// kilogramsPerTonne converts the capacity given to NewShip into the
// kilograms every other mass in the model is expressed in.
const kilogramsPerTonne = 1000

// Domain errors for ship operations.
var (
	// ErrNameIsRequired is returned when attempting to create a ship without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSinkIsRequired is returned when attempting to create a ship without a report sink.
	ErrSinkIsRequired = errs.NewValueIsRequiredError("report sink")
	// ErrShipIsNotConstructed is returned when using an improperly initialized Ship.
	ErrShipIsNotConstructed = errors.New("Ship must be created via NewShip constructor")
	// ErrContainerAlreadyOnBoard is returned when boarding a container whose serial
	// is already present on the ship.
	ErrContainerAlreadyOnBoard = errors.New("container is already on board")
)

// ReportSink receives the human-readable lines a ship emits: boarding
// confirmations, capacity rejections and fleet summaries. The ship never
// fails a business operation with an error; it degrades to a no-op and a
// sink line instead.
type ReportSink interface {
	WriteLine(line string)
}

// Ship is the aggregate root for a vessel carrying containers. It enforces
// two boarding limits: a container-count limit and a weight-capacity limit.
//
// The weight check at boarding time uses each container's load mass at that
// moment, not its maximum capacity. Cargo loaded into a container after it
// boards is not re-validated against the ship's ceiling, so a ship can end
// up over its stated capacity. GetOverweightShipsQuery exists to surface
// exactly those ships.
type Ship struct {
	// id uniquely identifies the ship
	id kernel.UUID
	// name is the human-readable name of the ship
	name string
	// maxContainers limits how many containers can be on board at once
	maxContainers int
	// maxWeightCapacity is the boarding weight limit in kilograms
	maxWeightCapacity float64
	// containers holds the boarded containers in boarding order, unique by serial
	containers []container.Container
	// sink receives the ship's report lines
	sink ReportSink
	// guard ensures the ship was properly constructed
	guard guard.ConstructorGuard
}

// NewShip creates an empty ship. The weight capacity is given in tonnes and
// stored in kilograms.
func NewShip(id kernel.UUID, name string, maxContainers int, capacityTonnes float64, sink ReportSink) (*Ship, error) {
	ship := &Ship{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ship.setID(id),
		ship.setName(name),
		ship.setMaxContainers(maxContainers),
		ship.setMaxWeightCapacity(capacityTonnes*kilogramsPerTonne),
		ship.setSink(sink),
	); err != nil {
		return nil, err
	}

	return ship, nil
}

// RestoreShip reconstructs a Ship aggregate from persistent storage. Unlike
// NewShip it takes the weight capacity in kilograms, as persisted, and the
// containers already on board.
func RestoreShip(
	id kernel.UUID,
	name string,
	maxContainers int,
	capacityKg float64,
	containers []container.Container,
	sink ReportSink,
) (*Ship, error) {
	ship := &Ship{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ship.setID(id),
		ship.setName(name),
		ship.setMaxContainers(maxContainers),
		ship.setMaxWeightCapacity(capacityKg),
		ship.setSink(sink),
		ship.setContainers(containers),
	); err != nil {
		return nil, err
	}

	return ship, nil
}

// IsEqual compares two ships by identity.
func (s *Ship) IsEqual(other *Ship) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks that the Ship was properly constructed via NewShip or
// RestoreShip. The zero value fails this validation.
func (s *Ship) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

// ID returns the unique identifier of the ship.
func (s *Ship) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable name of the ship.
func (s *Ship) Name() string {
	return s.name
}

// MaxContainers returns the container-count limit.
func (s *Ship) MaxContainers() int {
	return s.maxContainers
}

// MaxWeightCapacity returns the boarding weight limit in kilograms.
func (s *Ship) MaxWeightCapacity() float64 {
	return s.maxWeightCapacity
}

// Containers returns the boarded containers in boarding order.
// The returned slice is a copy to prevent external modification.
func (s *Ship) Containers() []container.Container {
	out := make([]container.Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// TotalWeight sums the current load mass of every boarded container.
// It walks the collection on every call; nothing is cached.
func (s *Ship) TotalWeight() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.LoadMass()
	}
	return total
}

// FindContainer returns the boarded container with the given serial,
// or nil when it is not on board.
func (s *Ship) FindContainer(serial kernel.SerialNumber) container.Container {
	for _, c := range s.containers {
		if c.SerialNumber().IsEqual(serial) {
			return c
		}
	}
	return nil
}

// CanAccept reports whether the ship has room for the container under both
// boarding limits, without boarding it and without emitting a sink line.
func (s *Ship) CanAccept(c container.Container) bool {
	if len(s.containers) >= s.maxContainers {
		return false
	}
	return s.TotalWeight()+c.LoadMass() <= s.maxWeightCapacity
}

// LoadContainer boards a container. A capacity rejection is not an error:
// the ship reports the reason to its sink and returns false. The returned
// error covers invalid input only.
func (s *Ship) LoadContainer(c container.Container) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if s.FindContainer(c.SerialNumber()) != nil {
		return false, ErrContainerAlreadyOnBoard
	}

	if len(s.containers) >= s.maxContainers {
		s.sink.WriteLine(fmt.Sprintf(
			"Ship %s cannot take container %s: container limit reached", s.name, c.SerialNumber()))
		return false, nil
	}

	if s.TotalWeight()+c.LoadMass() > s.maxWeightCapacity {
		s.sink.WriteLine(fmt.Sprintf(
			"Ship %s cannot take container %s: weight capacity exceeded", s.name, c.SerialNumber()))
		return false, nil
	}

	s.containers = append(s.containers, c)
	s.sink.WriteLine(fmt.Sprintf("Container %s loaded onto ship %s", c.SerialNumber(), s.name))
	return true, nil
}

// UnloadContainer removes the container with the given serial from the ship.
// A missing serial is reported to the sink and the method returns false.
func (s *Ship) UnloadContainer(serial kernel.SerialNumber) bool {
	index := s.indexOf(serial)
	if index < 0 {
		s.sink.WriteLine(fmt.Sprintf("Container %s is not on ship %s", serial, s.name))
		return false
	}

	s.removeAt(index)
	s.sink.WriteLine(fmt.Sprintf("Container %s unloaded from ship %s", serial, s.name))
	return true
}

// TransferContainer moves a container to the target ship by removing it here
// and then attempting to board it there. When the target rejects the
// container it is NOT put back: it ends up on neither ship. This mirrors the
// long-standing behavior downstream tooling depends on; use
// TransferContainerTwoPhase for the safe variant.
func (s *Ship) TransferContainer(serial kernel.SerialNumber, target *Ship) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	index := s.indexOf(serial)
	if index < 0 {
		s.sink.WriteLine(fmt.Sprintf("Container %s is not on ship %s", serial, s.name))
		return false, nil
	}

	c := s.containers[index]
	s.removeAt(index)
	return target.LoadContainer(c)
}

// TransferContainerTwoPhase moves a container to the target ship, removing
// it from this ship only after the target has accepted it. On rejection the
// container stays here and the target's sink carries the rejection line.
func (s *Ship) TransferContainerTwoPhase(serial kernel.SerialNumber, target *Ship) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	index := s.indexOf(serial)
	if index < 0 {
		s.sink.WriteLine(fmt.Sprintf("Container %s is not on ship %s", serial, s.name))
		return false, nil
	}

	accepted, err := target.LoadContainer(s.containers[index])
	if err != nil || !accepted {
		return false, err
	}

	s.removeAt(index)
	return true, nil
}

// DisplayShipInfo writes the ship summary line followed by one indented
// Describe line per boarded container.
func (s *Ship) DisplayShipInfo() {
	s.sink.WriteLine(fmt.Sprintf(
		"Ship %s: %d containers, total load %s/%s kg",
		s.name, len(s.containers), formatWeight(s.TotalWeight()), formatWeight(s.maxWeightCapacity)))

	for _, c := range s.containers {
		s.sink.WriteLine("  " + c.Describe())
	}
}

// indexOf returns the position of the container with the given serial,
// or -1 when it is not on board.
func (s *Ship) indexOf(serial kernel.SerialNumber) int {
	for i, c := range s.containers {
		if c.SerialNumber().IsEqual(serial) {
			return i
		}
	}
	return -1
}

// removeAt drops the container at the given position, preserving boarding order.
func (s *Ship) removeAt(index int) {
	s.containers = append(s.containers[:index], s.containers[index+1:]...)
}

// setID sets the ship's unique identifier with validation.
func (s *Ship) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// setName sets the ship's name with validation.
func (s *Ship) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

// setMaxContainers sets the container-count limit with validation.
func (s *Ship) setMaxContainers(maxContainers int) error {
	if maxContainers <= 0 {
		return errs.NewValueIsInvalidError("maxContainers is invalid")
	}

	s.maxContainers = maxContainers
	return nil
}

// setMaxWeightCapacity sets the boarding weight limit in kilograms with validation.
func (s *Ship) setMaxWeightCapacity(capacityKg float64) error {
	if math.IsNaN(capacityKg) || math.IsInf(capacityKg, 0) || capacityKg <= 0 {
		return errs.NewValueIsInvalidError("maxWeightCapacity is invalid")
	}

	s.maxWeightCapacity = capacityKg
	return nil
}

// setSink sets the ship's report sink.
func (s *Ship) setSink(sink ReportSink) error {
	if sink == nil {
		return ErrSinkIsRequired
	}

	s.sink = sink
	return nil
}

// setContainers establishes the boarded containers from persistent state.
// Serials must be unique; the collection may be empty.
func (s *Ship) setContainers(containers []container.Container) error {
	seen := make(map[string]struct{}, len(containers))
	for _, c := range containers {
		if err := c.Validate(); err != nil {
			return err
		}

		key := c.SerialNumber().String()
		if _, duplicate := seen[key]; duplicate {
			return errs.NewValueIsInvalidError("containers are invalid")
		}
		seen[key] = struct{}{}
	}

	s.containers = make([]container.Container, len(containers))
	copy(s.containers, containers)
	return nil
}

// formatWeight renders a mass in kilograms without trailing zeros.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
