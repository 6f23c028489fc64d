package tiercache_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/unkn0wn-root/tiercache"
	"github.com/unkn0wn-root/tiercache/codec"
	"github.com/unkn0wn-root/tiercache/memory"
	"github.com/unkn0wn-root/tiercache/provider/ristretto"
	"github.com/unkn0wn-root/tiercache/store"
)

func Example() {
	ctx := context.Background()

	mem := memory.New[string, string]("mem")
	p, err := ristretto.New(ristretto.Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64, SyncWrites: true})
	if err != nil {
		panic(err)
	}
	bytesTier, err := store.New(store.Options[string, string]{
		Name:      "ristretto",
		Namespace: "greeting",
		Provider:  p,
		Codec:     codec.String{},
	})
	if err != nil {
		panic(err)
	}
	defer bytesTier.Close(ctx)

	loads := 0
	origin := tiercache.NewReadOnly[string, string]("origin", func(_ context.Context, k string) (string, error) {
		loads++
		return strings.ToUpper(k), nil
	})

	hot := tiercache.BothWayCombined[string, string](mem, bytesTier)
	greetings := tiercache.BothWayCombinedReadOnly[string, string](hot, origin)
	fmt.Println(greetings.Name())

	for i := 0; i < 3; i++ {
		v, _ := greetings.Retrieve(ctx, "hello")
		fmt.Println(v)
	}
	fmt.Println("origin loads:", loads)
	fmt.Println("memory entries:", mem.Len())
	// Output:
	// mem <-> ristretto <- origin
	// HELLO
	// HELLO
	// HELLO
	// origin loads: 1
	// memory entries: 1
}

func ExampleStack() {
	ctx := context.Background()
	l1 := memory.New[int, string]("l1")
	l2 := memory.New[int, string]("l2")
	l3 := memory.NewFrom("l3", map[int]string{7: "seven"})

	c, err := tiercache.Stack([]tiercache.ReadWriteCache[int, string]{l1, l2, l3})
	if err != nil {
		panic(err)
	}
	v, _ := c.Retrieve(ctx, 7)
	fmt.Println(c.Name(), v, l1.Len(), l2.Len())
	// Output: l1 <-> l2 <-> l3 seven 1 1
}
