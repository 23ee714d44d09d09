package render

// IndexWidth is the left strip reserved for the year label and month index
const IndexWidth = 12

// IndexHeight is the vertical extent of the index: year label, a blank row, twelve months
const IndexHeight = 14

// ColumnX returns the screen column where weekday column col starts on a screen width cells wide
func ColumnX(width, col int) int {
	span := max(width-IndexWidth, 0)
	return IndexWidth + span/14 + span/7*col
}

// RowY returns the screen row of grid row (0 = weekday header) on a screen height cells tall
func RowY(height, row int) int {
	return height/14 + height/7*row
}

// IndexTop returns the row of the year label, centering the index vertically
func IndexTop(height int) int {
	return max(height-IndexHeight, 0) / 2
}
