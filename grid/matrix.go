/*
Package grid provides the square-matrix foundation for cohort projections.

PURPOSE:
  This package contains domain-agnostic numeric plumbing: fixed-size square
  matrices of decimal cells, sequence normalization, and labeled table
  conversion. It knows nothing about cohorts, hiring, or revenue. The cohort
  package supplies the formulas; grid supplies the mechanics.

KEY CONCEPTS IN THIS FILE (matrix.go):
  - Matrix: An immutable square matrix addressed by (row, column)
  - Build: Cell-function constructor (the formula lives at the call site)
  - Elementwise algebra: MulElem, Scale, CumProdRows

DESIGN PRINCIPLES:
  1. Immutability: A Matrix is never modified after construction. Every
     operation returns a new Matrix; accessors return copies.
  2. Precision: Uses decimal.Decimal so identical inputs produce identical
     cells, exactly, every time. Floats appear only at display boundaries.
  3. Convention: Row index first, column index second, both zero-based.

USAGE:
  m := grid.Build(3, func(i, j int) decimal.Decimal {
      if j >= i {
          return decimal.NewFromInt(1)
      }
      return decimal.Zero
  })
  scaled := m.Scale(decimal.NewFromInt(100))

SEE ALSO:
  - sequence.go: Slice normalization and sampling helpers
  - table.go: Labeled grid views for display layers
*/
package grid

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MATRIX - Immutable square matrix of decimal cells
// =============================================================================

// Matrix is a square matrix stored row-major. The zero value is an empty
// 0x0 matrix. Cells are unexported; once built, a Matrix cannot change.
type Matrix struct {
	n     int
	cells []decimal.Decimal
}

// Build constructs an n x n matrix by evaluating cell(i, j) for every
// position. The cell function is called exactly once per position, rows
// first.
func Build(n int, cell func(i, j int) decimal.Decimal) Matrix {
	m := Matrix{n: n, cells: make([]decimal.Decimal, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.cells[i*n+j] = cell(i, j)
		}
	}
	return m
}

// Filled constructs an n x n matrix with every cell set to v.
func Filled(n int, v decimal.Decimal) Matrix {
	return Build(n, func(int, int) decimal.Decimal { return v })
}

// FromFloats constructs a matrix from square float64 data. Intended for
// fixtures and boundary conversions; pipeline math should build decimal
// cells directly.
func FromFloats(rows [][]float64) Matrix {
	n := len(rows)
	return Build(n, func(i, j int) decimal.Decimal {
		return decimal.NewFromFloat(rows[i][j])
	})
}

func (m Matrix) Size() int { return m.n }

// At returns the cell at row i, column j.
func (m Matrix) At(i, j int) decimal.Decimal { return m.cells[i*m.n+j] }

// Row returns a copy of row i.
func (m Matrix) Row(i int) []decimal.Decimal {
	row := make([]decimal.Decimal, m.n)
	copy(row, m.cells[i*m.n:(i+1)*m.n])
	return row
}

// WithCell returns a copy of m with the single cell (i, j) replaced.
func (m Matrix) WithCell(i, j int, v decimal.Decimal) Matrix {
	out := Matrix{n: m.n, cells: make([]decimal.Decimal, len(m.cells))}
	copy(out.cells, m.cells)
	out.cells[i*m.n+j] = v
	return out
}

// =============================================================================
// ELEMENTWISE ALGEBRA
// =============================================================================

// MulElem returns the elementwise (Hadamard) product. Both matrices must be
// the same size.
func (m Matrix) MulElem(other Matrix) Matrix {
	return Build(m.n, func(i, j int) decimal.Decimal {
		return m.At(i, j).Mul(other.At(i, j))
	})
}

// Scale returns m with every cell multiplied by s.
func (m Matrix) Scale(s decimal.Decimal) Matrix {
	return Build(m.n, func(i, j int) decimal.Decimal {
		return m.At(i, j).Mul(s)
	})
}

// CumProdRows returns the running product along each row: cell (i, j) of the
// result is the product of cells (i, 0) through (i, j) of m.
func (m Matrix) CumProdRows() Matrix {
	out := Matrix{n: m.n, cells: make([]decimal.Decimal, len(m.cells))}
	for i := 0; i < m.n; i++ {
		running := decimal.NewFromInt(1)
		for j := 0; j < m.n; j++ {
			running = running.Mul(m.At(i, j))
			out.cells[i*m.n+j] = running
		}
	}
	return out
}

// ColumnSums returns the sum of each column, left to right.
func (m Matrix) ColumnSums() []decimal.Decimal {
	sums := make([]decimal.Decimal, m.n)
	for j := 0; j < m.n; j++ {
		sum := decimal.Zero
		for i := 0; i < m.n; i++ {
			sum = sum.Add(m.At(i, j))
		}
		sums[j] = sum
	}
	return sums
}

// =============================================================================
// COMPARISON AND CONVERSION
// =============================================================================

// Equal reports whether both matrices have the same size and numerically
// equal cells. Decimal comparison, so 1.5 equals 1.500.
func (m Matrix) Equal(other Matrix) bool {
	if m.n != other.n {
		return false
	}
	for k := range m.cells {
		if !m.cells[k].Equal(other.cells[k]) {
			return false
		}
	}
	return true
}

// Float64s converts the matrix to plain float64 rows for display layers.
// The result is freshly allocated on every call.
func (m Matrix) Float64s() [][]float64 {
	rows := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = make([]float64, m.n)
		for j := 0; j < m.n; j++ {
			f, _ := m.At(i, j).Float64()
			rows[i][j] = f
		}
	}
	return rows
}
