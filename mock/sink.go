package mock

import "github.com/hkjin/naverbook"

var _ naverbook.ResultSink = (*ResultSink)(nil)

// ResultSink is a mock implementation of naverbook.ResultSink.
type ResultSink struct {
	PutFn func(book *naverbook.Book)
}

func (s *ResultSink) Put(book *naverbook.Book) {
	s.PutFn(book)
}

var _ naverbook.CoverSink = (*CoverSink)(nil)

// CoverSink is a mock implementation of naverbook.CoverSink.
type CoverSink struct {
	PutFn func(data []byte)
}

func (s *CoverSink) Put(data []byte) {
	s.PutFn(data)
}
