package fogmap

import (
	"context"
	"os"
	"sync"

	"github.com/bodgit/fogmap/tile"
)

type result struct {
	name string
	tile *tile.Tile
}

func (l *Loader) findTileFiles(ctx context.Context, dir string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)

		d, err := os.Open(dir)
		if err != nil {
			errc <- err
			return
		}
		defer d.Close()

		names, err := d.Readdirnames(0)
		if err != nil {
			errc <- err
			return
		}

		for _, name := range names {
			// Ignore any hidden files, otherwise we end up fighting
			// with things like Spotlight, etc.
			if name[0] == '.' {
				continue
			}

			select {
			case out <- name:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return out, errc
}

func (l *Loader) tileWorker(ctx context.Context, wg *sync.WaitGroup, dir string, in <-chan string, out chan<- result) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer wg.Done()

		for name := range in {
			t, err := tile.Decode(dir, name, l.logger)
			if err != nil {
				l.logf("skipping %s: %v", name, err)
				continue
			}

			select {
			case out <- result{name, t}:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return errc
}

// decodeAll fans the directory listing out over the worker pool and
// collects every successfully decoded tile. Per-file decode failures
// are logged by the workers and never surface here; only listing
// failures and cancellation do.
func (l *Loader) decodeAll(ctx context.Context, dir string) ([]result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	names, errc := l.findTileFiles(ctx, dir)
	errcList := []<-chan error{errc}

	out := make(chan result)
	var wg sync.WaitGroup
	wg.Add(l.workers)
	for i := 0; i < l.workers; i++ {
		errcList = append(errcList, l.tileWorker(ctx, &wg, dir, names, out))
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	var loaded []result
	for r := range out {
		loaded = append(loaded, r)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, err
	}

	return loaded, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
