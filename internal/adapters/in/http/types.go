package http

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewShip is the request body for registering a ship.
type NewShip struct {
	Name           string  `json:"name"`
	MaxContainers  int     `json:"maxContainers"`
	CapacityTonnes float64 `json:"capacityTonnes"`
}

// ShipCreated reports the identifier allocated to a new ship.
type ShipCreated struct {
	ID string `json:"id"`
}

// Ship is one fleet-list entry.
type Ship struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	MaxContainers     int     `json:"maxContainers"`
	MaxWeightCapacity float64 `json:"maxWeightCapacity"`
	ContainerCount    int     `json:"containerCount"`
	TotalLoad         float64 `json:"totalLoad"`
}

// OverweightShip is one entry of the overweight-ships report.
type OverweightShip struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	MaxWeightCapacity float64 `json:"maxWeightCapacity"`
	TotalLoad         float64 `json:"totalLoad"`
}

// Manifest is a single ship's summary with its boarded containers.
type Manifest struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	MaxContainers     int                 `json:"maxContainers"`
	MaxWeightCapacity float64             `json:"maxWeightCapacity"`
	TotalLoad         float64             `json:"totalLoad"`
	Containers        []ManifestContainer `json:"containers"`
}

// ManifestContainer is one boarded container on a manifest.
type ManifestContainer struct {
	Serial    string  `json:"serial"`
	Kind      string  `json:"kind"`
	LoadMass  float64 `json:"loadMass"`
	MaxWeight float64 `json:"maxWeight"`
}

// NewContainer is the request body for registering a container.
// Hazardous, pressure, productType and temperature only apply to the
// variants that carry them.
type NewContainer struct {
	Kind        string  `json:"kind"`
	MaxWeight   float64 `json:"maxWeight"`
	Height      float64 `json:"height"`
	Depth       float64 `json:"depth"`
	Hazardous   bool    `json:"hazardous"`
	Pressure    float64 `json:"pressure"`
	ProductType string  `json:"productType"`
	Temperature float64 `json:"temperature"`
}

// ContainerRegistered reports the serial number allocated to a new container.
type ContainerRegistered struct {
	Serial string `json:"serial"`
	Kind   string `json:"kind"`
}

// CargoRequest is the request body for loading cargo.
type CargoRequest struct {
	Mass float64 `json:"mass"`
}

// LoadResult reports a cargo load outcome.
type LoadResult struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// BoardRequest is the request body for boarding a container onto a ship.
type BoardRequest struct {
	Serial string `json:"serial"`
}

// BoardResult reports a boarding outcome.
type BoardResult struct {
	Boarded bool `json:"boarded"`
}

// UnloadResult reports whether a container was removed from a ship.
type UnloadResult struct {
	Removed bool `json:"removed"`
}

// TransferRequest is the request body for moving a container between ships.
type TransferRequest struct {
	TargetShipID string `json:"targetShipId"`
	Serial       string `json:"serial"`
}

// TransferResult reports a transfer outcome.
type TransferResult struct {
	Moved bool `json:"moved"`
}
