package domain

// categories is the closed set of semantic labels annotators may assign.
// Order matters for presentation; the set is not user-extensible.
var categories = []string{
	"Spatial Configuration",
	"Lateral location (left / right / beside)",
	"Front–Back & Proximity",
	"Vertical position",
	"Motion and Trajectory",
	"Viewpoint and Visibility",
	"Causal and Motivational Reasoning",
	"Social Interaction and Relationships",
	"Physical and Environmental Context",
	"Counting",
}

// Categories returns the category set in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether label is a member of the category set.
func ValidCategory(label string) bool {
	for _, c := range categories {
		if c == label {
			return true
		}
	}
	return false
}
