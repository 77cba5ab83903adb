// Standard attribute keys for array operations. Using these keys keeps the
// log stream filterable by menu, operation, and array shape.

package log

// Operation context.
const (
	// OperationKey names the array operation being performed.
	// Examples: "create_2d", "elementwise_add", "percentile"
	OperationKey = "array.operation"

	// MenuKey names the menu a choice was dispatched from.
	// Examples: "main", "create", "statistics"
	MenuKey = "shell.menu"

	// ChoiceKey records the raw menu choice entered by the user.
	ChoiceKey = "shell.choice"
)

// Array shape and size.
const (
	// ShapeKey records the shape tuple of the array involved.
	ShapeKey = "array.shape"

	// ElementsKey records the total element count of the array involved.
	ElementsKey = "array.elements"

	// AxisKey records the axis an operation was applied along.
	AxisKey = "array.axis"
)
