package stdx_test

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/stdx"
	"github.com/arloliu/stdx/format"
	"github.com/arloliu/stdx/linked"
	"github.com/arloliu/stdx/quadtree"
	"github.com/arloliu/stdx/snapshot"
)

func Example() {
	s, err := stdx.New(stdx.WithPooling(), stdx.WithTracking())
	if err != nil {
		panic(err)
	}

	arr, err := s.CreateArray(8, 4)
	if err != nil {
		panic(err)
	}
	for _, v := range []uint64{10, 20, 30} {
		_ = arr.Push(binary.LittleEndian.AppendUint64(nil, v))
	}
	_ = arr.Put(3, binary.LittleEndian.AppendUint64(nil, 40))

	fmt.Printf("%+v\n", arr.Head())

	out := make([]byte, 8)
	_ = arr.Pop(out)
	fmt.Println(binary.LittleEndian.Uint64(out))

	arr.Destroy()
	fmt.Println(s.Close())
	// Output:
	// {Count:4 Max:4 Size:32 Stride:8}
	// 40
	// <nil>
}

func ExampleNewHashmap() {
	s, _ := stdx.New()
	defer s.Close()

	m, err := stdx.NewHashmap[string](s, 2)
	if err != nil {
		panic(err)
	}
	defer m.Destroy()

	fmt.Println(m.Set("a", "alpha"), m.Set("b", "beta"), m.Set("c", "gamma"))
	m.Set("a", "ALPHA")
	v, ok := m.Get("a")
	fmt.Println(v, ok, m.Count())
	// Output:
	// true true false
	// ALPHA true 2
}

func ExampleStructs_NewChain() {
	s, _ := stdx.New(stdx.WithTracking())

	c, _ := s.NewChain()
	head, _ := c.CreateLink(linked.NoLink, 8, 16)
	tail, _ := c.CreateLink(head, 8, 16)
	_, _ = c.CreateLink(head, 8, 16)

	n, _ := c.Collapse(tail)
	fmt.Println(n, s.Stats().Live, s.Close())
	// Output:
	// 3 0 <nil>
}

func ExampleStructs_NewSpatialTree() {
	s, _ := stdx.New()
	defer s.Close()

	tree, err := s.NewSpatialTree(quadtree.Bounds{MaxX: 100, MaxY: 100}, 16, 2)
	if err != nil {
		panic(err)
	}
	defer tree.Destroy()

	engine := tree.Root().Objects().Config().Engine()
	for _, p := range []quadtree.Point{{X: 10, Y: 10}, {X: 80, Y: 20}, {X: 30, Y: 70}, {X: 60, Y: 60}} {
		_ = tree.Insert(quadtree.Record(engine, p, 16))
	}

	locate := quadtree.XYLocator(engine)
	for rec := range tree.Query(quadtree.Bounds{MinX: 50, MaxX: 100, MaxY: 100}) {
		fmt.Println(locate(rec))
	}
	// Output:
	// {80 20}
	// {60 60}
}

func Example_snapshot() {
	s, _ := stdx.New()
	defer s.Close()

	arr, _ := s.CreateArray(4, 1024)
	defer arr.Destroy()
	_ = arr.Push([]byte{1, 2, 3, 4})

	data, err := snapshot.EncodeArray(arr, snapshot.WithCompression(format.CompressionS2))
	if err != nil {
		panic(err)
	}
	h, _ := snapshot.ReadHeader(data)
	fmt.Println(h.Kind, h.Compression, h.RawSize, len(data) < int(h.RawSize))

	restored, err := snapshot.DecodeArray(data, snapshot.WithArrayOptions(s.ArrayOptions()...))
	if err != nil {
		panic(err)
	}
	defer restored.Destroy()
	fmt.Println(restored.Count(), restored.Max())
	// Output:
	// Array S2 4112 true
	// 1 1024
}
