package main

import (
	"flag"
	"fmt"
	"log"
	"simple-list/internal/config"
	"simple-list/internal/platform"
	"simple-list/internal/platform/helper"
	"simple-list/internal/platform/parser"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := helper.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}

	list := platform.NewComparableList[string]()
	list.AddFront("A")
	list.AddFront("B")
	list.AddBack("C")
	list.AddBack("A")
	fmt.Println("List contents:", list)
	fmt.Println("List contains A:", list.Contains("A"))
	fmt.Println("List contains D:", list.Contains("D"))
	fmt.Println("Size of list:", list.Count())
	fmt.Println("Unique elements count:", list.CountUniques())

	snapshot, err := parser.EncodeList(list)
	if err != nil {
		log.Fatal(err)
	}
	backup, err := parser.DecodeList(snapshot, func(a, b string) bool { return a == b })
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Snapshot of %d bytes restored: %s\n", len(snapshot), backup)

	if err := run(list); err != nil {
		helper.Log.WithField("size", list.Count()).Warnf("Caught error: %v", err)
	}

	fmt.Println("Backup still holds:", backup)
}

func run(list *platform.SingleLinkedList[string]) error {
	elem, err := list.Get(1)
	if err != nil {
		return err
	}
	fmt.Println("Element at position 1:", elem)

	fmt.Println("Removing A:", list.Remove("A"))
	fmt.Println("Size after removal:", list.Count())
	fmt.Println("List contents:", list)

	if err := list.InsertAt(1, "D"); err != nil {
		return err
	}
	fmt.Println("After inserting D at position 1:", list)

	removed, err := list.RemoveFront()
	if err != nil {
		return err
	}
	fmt.Println("Removing first element:", removed)
	fmt.Println("Size after removing first:", list.Count())

	removed, err = list.RemoveAt(list.Count() - 1)
	if err != nil {
		return err
	}
	fmt.Println("Removing last element:", removed)
	fmt.Println("List contents:", list)

	for !list.IsEmpty() {
		removed, err = list.RemoveAt(0)
		if err != nil {
			return err
		}
		fmt.Println("Removing element at position 0:", removed)
	}
	fmt.Printf("List contents: %q\n", list.String())

	_, err = list.RemoveFront()
	return err
}
