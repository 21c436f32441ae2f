package dictionary

type Stats struct {
	Size         int
	Capacity     int
	TableSize    int
	UsedBuckets  int
	LongestChain int
	LoadFactor   float32
}
