package datasource_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvreport/category"
	"github.com/katalvlaran/lvreport/datasource"
	"github.com/katalvlaran/lvreport/hierarchy"
	"github.com/katalvlaran/lvreport/nested"
)

// ExampleGenerator_Generate builds a two-level mass report.
// Product tree:
//
//	sat (Project)
//	├── bus            no category, skipped
//	│   └── battery   (Module, m=2)
//	├── panel          no category, pruned
//	└── radio         (Module, m=3)
//
// The filter tree is Project > Module.
func ExampleGenerator_Generate() {
	project := category.New("Project", "project")
	module := category.New("Module", "module")

	// Filter tree: Project > Module
	top, _ := hierarchy.CreateTopLevelCategoryHierarchy(project)
	_, _ = top.AddChildCategory(module)

	// Product tree, flattened in pre-order
	mass := func(v string) []*nested.Parameter {
		return []*nested.Parameter{{Type: "m", Values: []string{v}}}
	}
	sat := &nested.Definition{ShortName: "sat", Name: "Satellite", Categories: []*category.Category{project}}
	bus := &nested.Definition{ShortName: "bus", Name: "Bus"}
	bus.Contained = []*nested.Usage{{ShortName: "battery", Name: "Battery", Categories: []*category.Category{module},
		Definition: &nested.Definition{ShortName: "bat", Parameters: mass("2")}}}
	sat.Contained = []*nested.Usage{
		{ShortName: "bus", Name: "Bus", Definition: bus},
		{ShortName: "panel", Name: "Panel", Definition: &nested.Definition{ShortName: "pnl"}},
		{ShortName: "radio", Name: "Radio", Categories: []*category.Category{module},
			Definition: &nested.Definition{ShortName: "rad", Parameters: mass("3")}},
	}
	elements, err := nested.Flatten(sat)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Columns: own mass, and the sum over children falling back to it
	shape := datasource.NewShape().
		MustDeclare("mass", datasource.FloatParameter("m")).
		MustDeclare("total", datasource.RollupColumn("total", "mass", datasource.Sum))

	r, err := datasource.NewGenerator(shape).Generate(top, elements)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, row := range datasource.Project(r).Rows {
		fmt.Printf("%s%s total=%v\n", strings.Repeat("  ", row.Depth), row.Name, row.Values["total"])
	}
	fmt.Println("pruned:", r.Pruned())

	// Output:
	// sat total=5
	//   sat.bus.battery total=2
	//   sat.radio total=3
	// pruned: 2
}
