package training

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidTestSize = errors.New("test size must be in (0, 1)")
	ErrClassTooSmall   = errors.New("class has fewer than two samples")
)

// StratifiedSplit partitions ds into train and test sets, keeping each class's
// share of the test set close to testSize.
func StratifiedSplit(ds Dataset, testSize float64, seed int64) (train, test Dataset, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, ErrInvalidTestSize
	}

	byClass := make(map[int][]int)
	var order []int
	for i, s := range ds {
		if _, ok := byClass[s.Label]; !ok {
			order = append(order, s.Label)
		}
		byClass[s.Label] = append(byClass[s.Label], i)
	}

	r := newRand(seed)
	for _, class := range order {
		idx := byClass[class]
		if len(idx) < 2 {
			return nil, nil, fmt.Errorf("%w: class %d", ErrClassTooSmall, class)
		}
		r.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		nTest := int(math.Round(float64(len(idx)) * testSize))
		nTest = max(1, min(nTest, len(idx)-1))
		for k, i := range idx {
			if k < nTest {
				test = append(test, ds[i])
			} else {
				train = append(train, ds[i])
			}
		}
	}
	return train, test, nil
}
