package testutil

import "github.com/jeepies/leagues/internal/ir"

// Task builds the common {task, area, points} record, members in that
// order.
func Task(task, area string, points float64) *ir.Object {
	return ir.NewObject(
		ir.O("task", ir.String(task)),
		ir.O("area", ir.String(area)),
		ir.O("points", ir.Number(points)),
	)
}

// Item builds an item for a Task record with the area as group and the
// task as label.
func Item(task, area string, points float64) ir.Item {
	return ir.Item{
		ID:     ir.MustItemID(area, Task(task, area, points)),
		Group:  area,
		Label:  task,
		Record: Task(task, area, points),
	}
}
