package catalog

// Descriptor names one kind in the Project > Area > Site > Context chain.
// The four CRUD surfaces are identical in shape; everything kind-specific
// lives here: the table, the label column ("name" or "title") and the
// parent reference column. JSON field names match column names.
type Descriptor struct {
	Resource    string // URL segment, e.g. "projects"
	Table       string
	LabelField  string // "name" or "title"
	ParentField string // "" for the root kind
	ParentTable string // "" for the root kind
}

var (
	Projects = Descriptor{
		Resource:   "projects",
		Table:      "projects",
		LabelField: "name",
	}

	Areas = Descriptor{
		Resource:    "areas",
		Table:       "areas",
		LabelField:  "name",
		ParentField: "project_id",
		ParentTable: "projects",
	}

	Sites = Descriptor{
		Resource:    "sites",
		Table:       "sites",
		LabelField:  "name",
		ParentField: "area_id",
		ParentTable: "areas",
	}

	Contexts = Descriptor{
		Resource:    "contexts",
		Table:       "contexts",
		LabelField:  "title",
		ParentField: "site_id",
		ParentTable: "sites",
	}
)

// All lists every kind in hierarchy order
var All = []Descriptor{Projects, Areas, Sites, Contexts}

// HasParent reports whether records of this kind carry a parent reference
func (d Descriptor) HasParent() bool {
	return d.ParentField != ""
}
