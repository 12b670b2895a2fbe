package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/triangle"
)

// AffineBetween recovers the affine transform mapping the vertices of
// src onto the vertices of dst in index order. Three point pairs fix
// the six coefficients exactly unless the source vertices are
// collinear.
func AffineBetween(src, dst triangle.VertexSet) (geometry.Affine, error) {
	a := mat.NewDense(6, 6, nil)
	b := mat.NewVecDense(6, nil)

	for i := 0; i < 3; i++ {
		p := src[i]
		q := dst[i]

		row := 2 * i
		a.Set(row, 0, p.X)
		a.Set(row, 1, p.Y)
		a.Set(row, 2, 1)
		b.SetVec(row, q.X)

		a.Set(row+1, 3, p.X)
		a.Set(row+1, 4, p.Y)
		a.Set(row+1, 5, 1)
		b.SetVec(row+1, q.Y)
	}

	var params mat.VecDense
	if err := params.SolveVec(a, b); err != nil {
		return geometry.Affine{}, fmt.Errorf("%w: cannot recover transform: %v", geometry.ErrDegenerate, err)
	}

	return geometry.Affine{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}, nil
}
