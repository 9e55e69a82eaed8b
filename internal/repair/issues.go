package repair

type Severity string

const (
	SeverityWarn Severity = "warning"
	SeverityInfo Severity = "info"
)

const (
	codeRoomDropped       = "room_dropped"
	codeRoomRenamed       = "room_renamed"
	codeRoomCoerced       = "room_coerced"
	codeRoomNudged        = "room_nudged"
	codeMaterialColor     = "material_color_invalid"
	codeCorridorDangling  = "corridor_dangling"
	codeCorridorSelfLoop  = "corridor_self_loop"
	codeCorridorRenamed   = "corridor_renamed"
	codeCorridorRerouted  = "corridor_rerouted"
	codePOIDropped        = "poi_dropped"
	codePOIInjected       = "poi_injected"
	codePOIRenamed        = "poi_renamed"
	codeCriticalPathFixed = "critical_path_defaulted"
	codePathEntryDropped  = "critical_path_entry_dropped"
	codeGridDefaulted     = "grid_defaulted"
	codeGridGrown         = "grid_grown"
	codeRoomUnreachable   = "room_unreachable"
)

// Issue is a non-fatal anomaly that repair corrected or dropped. Nothing in
// an Issue prevents the level from being assembled.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Entity   string   `json:"entity,omitempty"`
}

// Warnings filters out informational issues.
func Warnings(issues []Issue) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Severity == SeverityWarn {
			out = append(out, issue)
		}
	}
	return out
}
