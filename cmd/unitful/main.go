// Package main provides the Unitful CLI.
package main

import (
	"fmt"
	"os"

	"github.com/unitful-go/unitful/backend/native"
	"github.com/unitful-go/unitful/quantity"
	"github.com/unitful-go/unitful/units"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Unitful %s\n", version)
		return
	}

	fmt.Println("Unitful - Unit-Aware Array Dispatch for Go")
	fmt.Printf("Version: %s\n\n", version)

	if err := demo(); err != nil {
		fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
}

// demo runs a small unit-checked computation.
func demo() error {
	reg := units.New()
	eng := quantity.NewEngine(reg, native.New())

	dx, err := native.NewArray([]float64{3, 4}, quantity.Shape{2})
	if err != nil {
		return err
	}
	dy, err := native.NewArray([]float64{400, 300}, quantity.Shape{2})
	if err != nil {
		return err
	}

	x := eng.MustWrap(dx, reg.MustUnit("m"))
	y := eng.MustWrap(dy, reg.MustUnit("cm"))

	res, err := eng.Dispatch("hypot", x, y)
	if err != nil {
		return err
	}
	h := res.Quantity()
	fmt.Printf("hypot(%v m, %v cm) = %v %s\n",
		dx.Float64s(), dy.Float64s(),
		h.Payload().(*native.Array).Float64s(), h.Unit())

	speed, err := x.Div(eng.MustWrap(native.Scalar(2), reg.MustUnit("s")))
	if err != nil {
		return err
	}
	fmt.Printf("speed unit: %s\n", speed.Unit())
	return nil
}
