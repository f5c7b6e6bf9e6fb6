package catalog

import "PhysioGolang/internal/entity"

// TestListResponse groups the full movement test catalog by body area.
type TestListResponse struct {
	Tests map[string][]entity.MobilityTest `json:"tests"`
	Total int                              `json:"total"`
}

type AreaTestsResponse struct {
	Area  string                `json:"area"`
	Tests []entity.MobilityTest `json:"tests"`
}
