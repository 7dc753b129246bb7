package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbib/builder"
	"github.com/katalvlaran/lvbib/core"
)

// ExampleOpen shows the sub-builder accessor pattern: the child's Finalize
// writes its value into the parent and re-enables the parent.
func ExampleOpen() {
	const (
		label core.Mask = 1 << iota
		owner
	)
	boxKind := core.NewKind("box", label|owner, "label", "owner")
	ownerKind := core.NewKind("owner", 1, "name")

	type box struct{ Label, Owner string }
	var bx box
	parent := builder.New(boxKind, func() (box, error) { return bx, nil })
	_ = parent.Set(label, func() { bx.Label = "tools" })

	var name string
	child, _ := builder.Open(parent, ownerKind,
		func() (string, error) { return name, nil },
		func(v string) error { return parent.Set(owner, func() { bx.Owner = v }) })

	_, err := parent.Finalize()
	fmt.Println("parent with open child:", errors.Is(err, core.ErrIllegalState))

	_ = child.Set(1, func() { name = "ann" })
	_, _ = child.Finalize()

	out, err := parent.Finalize()
	fmt.Println(out.Label, out.Owner, err)

	// Output:
	// parent with open child: true
	// tools ann <nil>
}
