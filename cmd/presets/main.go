package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base   = flag.String("base", "https://github.com/daver64/rworld-presets.git", "base url")
		bundle = flag.String("bundle", "earthlike", "preset bundle name")
		out    = flag.String("o", "./presets", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		panic("output dir path required")
	}

	if *bundle == "" {
		panic("bundle name required")
	}

	path := fmt.Sprintf("%s/%s", *out, *bundle)

	if err := os.RemoveAll(path); err != nil {
		panic(err)
	}

	log.Default().Printf("start downloading presets %s", path)

	url := fmt.Sprintf("git::%s//bundles/%s", *base, *bundle)

	if err := get.Get(path, url); err != nil {
		panic(err)
	}

	log.Default().Printf("done downloading presets %s", path)
}
