package grid

// =============================================================================
// TABLE - Labeled grid view for display layers
// =============================================================================

// Table is a labeled snapshot of a Matrix. Cells are plain float64 because
// consumers format them rather than compute with them; pipeline math stays
// in decimal on the Matrix itself.
type Table struct {
	RowLabels    []string    `json:"row_labels"`
	ColumnLabels []string    `json:"column_labels"`
	Cells        [][]float64 `json:"cells"`
}

// Table converts the matrix to a labeled view. Callers supply one label per
// row and per column. All data is copied; mutating the Table never touches
// the Matrix.
func (m Matrix) Table(rowLabels, columnLabels []string) Table {
	return Table{
		RowLabels:    append([]string(nil), rowLabels...),
		ColumnLabels: append([]string(nil), columnLabels...),
		Cells:        m.Float64s(),
	}
}
