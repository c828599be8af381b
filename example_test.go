package storagecache_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/storagecache"
	"github.com/unkn0wn-root/storagecache/codec"
	"github.com/unkn0wn-root/storagecache/provider/bigcache"
)

func Example() {
	p, err := bigcache.New(bigcache.Config{LifeWindow: time.Hour})
	if err != nil {
		panic(err)
	}
	reg, err := storagecache.New(storagecache.Options{Namespace: "kolab", Provider: p})
	if err != nil {
		panic(err)
	}
	defer reg.Close(context.Background())

	a, _ := reg.GetListHandle(storagecache.Params{"host": "imap", "port": 143, "user": "alice"})
	b, _ := reg.GetListHandle(storagecache.Params{"user": "alice", "port": 143, "host": "imap"})
	fmt.Println("same handle:", a == b)

	_, err = reg.GetListHandle(storagecache.Params{"port": 143, "user": "alice"})
	fmt.Println("missing parameter:", errors.Is(err, storagecache.ErrMissingParameter))

	folders := storagecache.Bind[[]string](a, codec.JSON[[]string]{})
	_ = folders.Set(context.Background(), []string{"INBOX", "INBOX/Calendar"})
	got, ok, _ := folders.Get(context.Background())
	fmt.Println(got, ok)

	// Output:
	// same handle: true
	// missing parameter: true
	// [INBOX INBOX/Calendar] true
}
