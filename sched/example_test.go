package sched_test

import (
	"fmt"
	"time"

	"github.com/msto63/gopress/sched"
)

func ExampleScheduleRepeatedly() {
	q := sched.NewSerialQueue("example")
	defer q.Close()

	count := 0
	item := sched.ScheduleRepeatedly(q, time.Millisecond, func() {
		count++
		fmt.Println("tick", count)
	}, sched.Times(3))
	<-item.Done()
	// Output:
	// tick 1
	// tick 2
	// tick 3
}

func ExampleDelay() {
	item := sched.Delay(sched.Inline, time.Millisecond, func() {
		fmt.Println("later")
	})
	<-item.Done()
	// Output: later
}
