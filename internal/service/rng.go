package service

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource 随机数来源。突破判定不直接调用全局随机函数，
// 便于测试时注入固定序列。
type RandomSource interface {
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func NewRandomSource() RandomSource {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}
