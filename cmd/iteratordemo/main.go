package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"simple-list/internal/config"
	"simple-list/internal/money"
	"simple-list/internal/platform"
	platformerror "simple-list/internal/platform/error"
	"simple-list/internal/platform/helper"
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

	list := newCoinList()
	fmt.Println("Original list:", list)
	fmt.Println("List size:", list.Count())

	fmt.Println("=== Iterator Demo ===")
	it := list.Iterator()
	for it.HasNext() {
		coin, err := it.Next()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Element:", coin.Name())
	}

	fmt.Println("Using range over the list:")
	for coin := range list.All() {
		fmt.Println("Element:", coin.Name())
	}

	fmt.Println("=== Forward traversal with indices ===")
	printFrom(list, 0)

	fmt.Printf("=== Starting from index %d ===\n", cfg.StartIndex)
	printFrom(list, cfg.StartIndex)

	fmt.Println("=== Iterator Modification Demo ===")
	if err := modify(newCoinList()); err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Error Handling Demo ===")
	errorCases(list)

	fmt.Println("Final list:", list)
}

func newCoinList() *platform.SingleLinkedList[*money.Coin] {
	list := platform.NewSingleLinkedList(money.CoinEquals)
	list.AddFront(money.NewPenny())
	list.AddFront(money.NewNickel())
	list.AddFront(money.NewQuarter())
	list.AddFront(money.NewHalfDollar())
	return list
}

func printFrom(list *platform.SingleLinkedList[*money.Coin], start int) {
	it, err := list.IteratorAt(start)
	if err != nil {
		helper.Log.Errorf("Cannot start at %d: %v", start, err)
		return
	}
	for it.HasNext() {
		index := it.NextIndex()
		coin, err := it.Next()
		if err != nil {
			helper.Log.Error(err)
			return
		}
		fmt.Printf("Index %d: %s\n", index, coin.Name())
	}
}

func modify(list *platform.SingleLinkedList[*money.Coin]) error {
	fmt.Println("Before modifications:", list)
	it := list.Iterator()

	it.Add(money.NewDollarCoin())
	fmt.Println("After adding a dollar coin at the beginning:", list)

	if it.HasNext() {
		coin, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Println("Retrieved element:", coin.Name())
		if err := it.Set(money.NewQuarter()); err != nil {
			return err
		}
		fmt.Println("After setting current element to a quarter:", list)
	}

	it.Add(money.NewDollarCoin())
	fmt.Println("After adding a dollar coin:", list)

	if it.HasNext() {
		coin, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Println("Retrieved element for removal:", coin.Name())
		if err := it.Remove(); err != nil {
			return err
		}
		fmt.Println("After removing element:", list)
	}
	return nil
}

func errorCases(list *platform.SingleLinkedList[*money.Coin]) {
	report := func(err error) {
		var stErr *platformerror.StackTraceError
		if errors.As(err, &stErr) {
			helper.Log.WithField("code", stErr.ErrorCode).Infof("Caught expected error: %v", err)
			helper.Log.Debug(stErr.Trace())
			return
		}
		helper.Log.Errorf("Unexpected error: %v", err)
	}

	report(list.Iterator().Remove())
	report(list.Iterator().Set(money.NewQuarter()))

	it := list.Iterator()
	for it.HasNext() {
		_, _ = it.Next()
	}
	_, err := it.Next()
	report(err)

	_, err = list.Iterator().Previous()
	report(err)
}
