package prime

import (
	"io"
	"runtime"
	"sync"

	"github.com/privacybydesign/timelock/big"
)

// GenerateConcurrent concurrently and continuously generates primes of the given size on all
// CPU cores, until the stop channel receives a struct or is closed. If an error is encountered,
// generation is stopped in all goroutines, and the error is sent on the second return parameter.
//
// rand must be safe for concurrent use, as crypto/rand.Reader is.
func GenerateConcurrent(rand io.Reader, bits int, stop chan struct{}) (<-chan *big.Int, <-chan error) {
	count := runtime.GOMAXPROCS(0)
	ints := make(chan *big.Int, count)
	errs := make(chan error, count)

	// All goroutines below watch stopped, which is closed exactly once: either when the caller
	// signals stop (by sending or closing), or when one of the goroutines encounters an error.
	stopped := make(chan struct{})
	var once sync.Once
	halt := func() { once.Do(func() { close(stopped) }) }
	go func() {
		select {
		case <-stop:
			halt()
		case <-stopped:
		}
	}()

	for i := 0; i < count; i++ {
		go func() {
			for {
				// If stopped is closed during the search, generate returns nil, nil
				x, err := generate(rand, bits, stopped)
				if err != nil {
					Logger.Debug("concurrent prime generation failed: ", err.Error())
					errs <- err
					halt()
					return
				}
				if x == nil {
					return
				}

				select {
				case <-stopped:
					return
				case ints <- x:
				}
			}
		}()
	}

	return ints, errs
}
