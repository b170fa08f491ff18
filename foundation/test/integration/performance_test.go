// File: performance_test.go
// Title: decorx Foundation Performance Tests
// Description: Benchmarks for decorator operations and the document codec on
//              documents of realistic size.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Rewritten for the decorator packages

package integration

import (
	"fmt"
	"testing"

	"github.com/msto63/decorx/foundation/core/decorator"
	"github.com/msto63/decorx/foundation/core/document"
	"github.com/msto63/decorx/foundation/core/object"
)

func sampleObject(size int) *object.Object {
	o := object.New()
	for i := 0; i < size; i++ {
		switch i % 3 {
		case 0:
			o.Set(fmt.Sprintf("key%04d", i), i)
		case 1:
			o.Set(fmt.Sprintf("key%04d", i), fmt.Sprintf("value-%d", i))
		default:
			o.Set(fmt.Sprintf("key%04d", i), i%2 == 0)
		}
	}
	return o
}

func BenchmarkExtend(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		source := sampleObject(size)
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				decorator.Decorate(object.New()).Extend(source)
			}
		})
	}
}

func BenchmarkDifference(b *testing.B) {
	left := sampleObject(500)
	right := sampleObject(1000)
	d := decorator.Decorate(left)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Difference(right)
	}
}

func BenchmarkSpecificationEquals(b *testing.B) {
	shape := sampleObject(200)
	other := sampleObject(200)
	spec := decorator.NewSpecification(shape)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !spec.Equals(other) {
			b.Fatal("expected equal structure")
		}
	}
}

func BenchmarkCodecRoundTrip(b *testing.B) {
	source := sampleObject(200)
	for _, format := range []document.Format{document.FormatJSON, document.FormatYAML, document.FormatTOML} {
		b.Run(format.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				data, err := document.Encode(source, format, 0)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := document.Decode(data, format); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
