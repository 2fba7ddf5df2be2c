package main

import (
	"flag"
	"fmt"
	"log"
	"simple-list/internal/config"
	"simple-list/internal/money"
	"simple-list/internal/platform"
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

	wallet := platform.NewSingleLinkedList(money.CoinEquals)
	for _, name := range cfg.Wallet {
		coin, err := money.NewCoin(name)
		if err != nil {
			helper.Log.Warnf("Skipping wallet entry: %v", err)
			continue
		}
		helper.Log.WithField("serial", coin.Serial()).Debugf("Minted %s", coin.Name())
		wallet.AddFront(coin)
	}

	fmt.Println("Coin List Demo")
	fmt.Println("==============")
	fmt.Println("Number of coins in list:", wallet.Count())
	fmt.Println("Number of distinct coins:", wallet.CountUniques())
	fmt.Println("Number of unique coin types:", countDenominations(wallet))
	fmt.Println("List is empty:", wallet.IsEmpty())

	fmt.Println("Coins in the list:")
	for i := 0; i < wallet.Count(); i++ {
		coin, err := wallet.Get(i)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d. %s (Value: $%.2f, %s, back: %s)\n", i+1, coin.Name(), coin.Value(), coin.Color(), coin.Back())
	}

	if wallet.IsEmpty() {
		return
	}

	first, _ := wallet.Get(0)
	last, _ := wallet.Get(wallet.Count() - 1)
	stranger := money.NewPenny()
	fmt.Println("Contains the first coin:", wallet.Contains(first))
	fmt.Println("Contains the last coin:", wallet.Contains(last))
	fmt.Println("Contains a freshly minted penny:", wallet.Contains(stranger))

	fmt.Printf("Removing %s... %v, new size %d\n", last.Name(), wallet.Remove(last), wallet.Count())
	fmt.Printf("Total value of coins in list: $%.2f\n", totalValue(wallet))
	helper.Log.Debugf("Slice total $%.2f", money.Total(wallet.Values()))
	fmt.Println("Order preserved:", wallet)

	coin, err := wallet.RemoveFront()
	if err != nil {
		helper.Log.Errorf("Error removing first coin: %v", err)
		return
	}
	fmt.Println("Removed first coin:", coin.Name())
	fmt.Println("New list size:", wallet.Count())
}

// countDenominations reports how many kinds of coin the wallet holds.
func countDenominations(wallet *platform.SingleLinkedList[*money.Coin]) int {
	kinds := platform.NewSingleLinkedList(money.SameDenomination)
	it := kinds.Iterator()
	for coin := range wallet.All() {
		it.Add(coin)
	}
	return kinds.CountUniques()
}

// totalValue drains the wallet into a temporary list while summing, then
// moves every coin back so the original order is restored.
func totalValue(wallet *platform.SingleLinkedList[*money.Coin]) float64 {
	total := 0.0
	temp := platform.NewSingleLinkedList(money.CoinEquals)
	for !wallet.IsEmpty() {
		coin, err := wallet.RemoveFront()
		if err != nil {
			break
		}
		total += coin.Value()
		temp.AddFront(coin)
	}
	for !temp.IsEmpty() {
		coin, err := temp.RemoveFront()
		if err != nil {
			break
		}
		wallet.AddFront(coin)
	}
	return total
}
