package httpclient

import (
	"context"
	"net/url"
	"sync"
)

type HttpClientSpyCall struct {
	URL  url.URL
	Data []byte
}

// HttpClientSpy records every Post call and completes synchronously with Result.
type HttpClientSpy struct {
	Calls  []HttpClientSpyCall
	Result Result
	lock   sync.Mutex
}

func NewHttpClientSpy() *HttpClientSpy {
	return &HttpClientSpy{Result: Success(nil)}
}

func (s *HttpClientSpy) Post(ctx context.Context, url url.URL, data []byte, completion func(Result)) {
	s.lock.Lock()
	s.Calls = append(s.Calls, HttpClientSpyCall{URL: url, Data: data})
	result := s.Result
	s.lock.Unlock()

	if completion != nil {
		completion(result)
	}
}

func (s *HttpClientSpy) CallsCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Calls)
}

func (s *HttpClientSpy) LastCall() HttpClientSpyCall {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Calls)
	if l == 0 {
		panic("Calls count is 0.")
	}
	return s.Calls[l-1]
}
