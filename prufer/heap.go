package prufer

// slotHeap is a container/heap min-heap of arena slots. Slots are ascending
// by label, so the smallest slot is the smallest label.
type slotHeap []int

func (h slotHeap) Len() int           { return len(h) }
func (h slotHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h slotHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *slotHeap) Push(x any) { *h = append(*h, x.(int)) }

func (h *slotHeap) Pop() any {
	old := *h
	last := old[len(old)-1]
	*h = old[:len(old)-1]

	return last
}
