// Package main implements a small driver for the bst package. It inserts words
// into a tree, removes some of them again and prints the tree after each step.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/thought-machine/go-flags"
	"gopkg.in/op/go-logging.v1"

	"github.com/e11jah/bst"
)

var log = logging.MustGetLogger("bst-demo")

var opts = struct {
	Verbosity int      `short:"v" long:"verbosity" default:"3" description:"Verbosity of output (0 = critical only, 5 = debug)"`
	File      string   `short:"f" long:"file" description:"File of newline separated words to insert"`
	Remove    []string `short:"r" long:"remove" description:"Word to remove after inserting. May be repeated."`
	Args      struct {
		Words []string `positional-arg-name:"words" description:"Words to insert"`
	} `positional-args:"true"`
}{}

const usage = `
bst-demo builds a binary search tree of words and prints it.

With no words given it replays a fixed scenario covering insertion, lookups
and the three kinds of removal.
`

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.LongDescription = usage
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	initLogging(opts.Verbosity)

	words := opts.Args.Words
	if opts.File != "" {
		fileWords, err := readWords(opts.File)
		if err != nil {
			log.Fatalf("%s", err)
		}
		words = append(words, fileWords...)
	}

	if len(words) == 0 {
		replay()
		return
	}

	tree := bst.New()
	for _, w := range words {
		if !tree.Insert(w) {
			log.Infof("%q is already present", w)
		}
	}
	log.Noticef("Inserted %d distinct words", tree.Size())
	for _, w := range tree.TraverseInOrder() {
		fmt.Println(w)
	}
	for _, w := range opts.Remove {
		if _, ok := tree.Remove(w); !ok {
			log.Warningf("%q is not in the tree", w)
		}
	}
	fmt.Print(tree.String())
}

// replay runs through insertion, lookups and each kind of removal on a fixed set of words.
func replay() {
	tree := bst.New()
	insert := func(words ...string) {
		log.Noticef("Adding %s to the tree", strings.Join(words, ", "))
		for _, w := range words {
			tree.Insert(w)
		}
		fmt.Print(tree.String())
	}
	remove := func(word string) {
		if _, ok := tree.Remove(word); ok {
			log.Noticef("Removed %q", word)
		} else {
			log.Noticef("%q is not in the tree", word)
		}
		fmt.Print(tree.String())
	}
	contains := func(word string) {
		fmt.Printf("Contains %q: %t\n", word, tree.Contains(word))
	}

	insert("apple", "banana", "kiwi", "cherry", "date")
	contains("banana")
	contains("grape")
	remove("kiwi")
	remove("grape")
	remove("apple")
	remove("banana")
	remove("cherry")
	remove("date")
	remove("cherry")
	contains("date")

	insert("fig", "grape", "elderberry")
	contains("fig")
	contains("apple")
	remove("grape")
	remove("fig")
	fmt.Println(strings.Join(tree.TraverseInOrder(), " "))
}

func readWords(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return words, nil
}

func initLogging(verbosity int) {
	if verbosity < int(logging.CRITICAL) {
		verbosity = int(logging.CRITICAL)
	} else if verbosity > int(logging.DEBUG) {
		verbosity = int(logging.DEBUG)
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter("%{time:15:04:05.000} %{level:7s}: %{message}"))
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(verbosity), "")
	logging.SetBackend(leveled)
}
