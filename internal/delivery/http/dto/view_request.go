package dto

// RoadmapRequest is the body of the "Generate Roadmap" submit action.
// Skills is the raw comma-separated text typed by the user.
type RoadmapRequest struct {
	TargetRole string `json:"target_role"`
	Skills     string `json:"skills"`
}
