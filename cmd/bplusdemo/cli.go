package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/bplus"
	"github.com/npillmayer/bplus/loader"
	"github.com/npillmayer/bplus/trie"
	"github.com/npillmayer/bplus/viz"
)

// cli is a read-eval-print loop around a string-keyed tree. Keys are
// mirrored into a prefix trie to serve the COMPLETE command.
type cli struct {
	scanner *bufio.Scanner
	tree    *bplus.Tree[string, string]
	keys    *trie.Trie
	errmsg  *color.Color
	okmsg   *color.Color
}

func newCli(s *bufio.Scanner, t *bplus.Tree[string, string]) *cli {
	return &cli{
		scanner: s,
		tree:    t,
		keys:    &trie.Trie{},
		errmsg:  color.New(color.FgRed),
		okmsg:   color.New(color.FgGreen),
	}
}

func (c *cli) start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *cli) printHelp() {
	fmt.Print(`
B+ Tree Demo

Available Commands:
  SET <key> <val>   Insert a key-value pair into the tree
  GET <key>         Retrieve the value for key
  DEL <key>         Remove a key-value pair from the tree
  SHOW              Render the tree to the terminal
  DOT               Print the tree as a GraphViz digraph
  CHECK             Validate the tree's structural invariants
  LOAD <file>       Bulk-load "key value" lines from a file
  COMPLETE <prefix> List stored keys starting with prefix
  SEED <n>          Insert n random word/sentence pairs
  HELP              Print this command list
  EXIT              Terminate this session

`)
}

func (c *cli) printPrompt() {
	fmt.Print("> ")
}

func (c *cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.errmsg.Printf("Unknown command %q\n", command)
	case "set":
		c.processSet(fields[1:])
	case "get":
		c.processGet(fields[1:])
	case "del":
		c.processDel(fields[1:])
	case "show":
		c.processShow()
	case "dot":
		bplus.Tree2Dot(c.tree, os.Stdout)
	case "check":
		c.processCheck()
	case "load":
		c.processLoad(fields[1:])
	case "complete":
		c.processComplete(fields[1:])
	case "seed":
		c.processSeed(fields[1:])
	case "help":
		c.printHelp()
	case "exit":
		os.Exit(0)
	}
}

func (c *cli) processSet(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: SET <key> <value>")
		return
	}
	key, val := args[0], strings.Join(args[1:], " ")
	if _, replaced := c.tree.Insert(key, val); replaced {
		c.okmsg.Printf("Replaced value for %q\n", key)
	} else {
		c.keys.Insert(key)
	}
	c.processShow()
}

func (c *cli) processGet(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: GET <key>")
		return
	}
	val, found := c.tree.Find(args[0])
	if !found {
		c.errmsg.Println("Key not found.")
		return
	}
	fmt.Println(val)
}

func (c *cli) processDel(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: DEL <key>")
		return
	}
	if _, removed := c.tree.Remove(args[0]); !removed {
		c.errmsg.Println("Key not found.")
		return
	}
	c.keys.Remove(args[0])
	c.processShow()
}

func (c *cli) processShow() {
	opts := viz.ConfigFromTerminal()
	if err := viz.FprintConsole(os.Stdout, c.tree, opts); err != nil {
		c.errmsg.Printf("Cannot render tree: %v\n", err)
	}
}

func (c *cli) processCheck() {
	if err := c.tree.Check(); err != nil {
		c.errmsg.Printf("Invariants violated: %v\n", err)
		return
	}
	c.okmsg.Printf("Tree checks out: %d entries, height %d\n", c.tree.Len(), c.tree.Height())
}

func (c *cli) processLoad(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: LOAD <file>")
		return
	}
	file, err := os.Open(args[0])
	if err != nil {
		c.errmsg.Printf("Cannot open file: %v\n", err)
		return
	}
	defer file.Close()
	bulk := loader.NewBulk(c.tree)
	events, cancel := bulk.Watch()
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for m := range events {
			if p, ok := m.(loader.Progress); ok && p.Done {
				fmt.Printf("Loaded %d entries, skipped %d lines\n", p.Inserted, p.Skipped)
			}
		}
	}()
	if _, err := bulk.Load(file); err != nil {
		c.errmsg.Printf("Load failed: %v\n", err)
	}
	<-done
	// re-mirror the key set, the load may have added many keys
	c.keys = &trie.Trie{}
	c.tree.ForEach(func(key, _ string) bool {
		c.keys.Insert(key)
		return true
	})
}

func (c *cli) processComplete(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	completions := c.keys.Autocomplete(prefix)
	if len(completions) == 0 {
		fmt.Println("No matching keys.")
		return
	}
	for _, key := range completions {
		fmt.Println(key)
	}
}

func (c *cli) processSeed(args []string) {
	n := 10
	if len(args) > 0 {
		if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 1 {
			fmt.Println("Usage: SEED <n>")
			return
		}
	}
	for i := 0; i < n; i++ {
		key := faker.Word()
		if _, replaced := c.tree.Insert(key, faker.Sentence()); !replaced {
			c.keys.Insert(key)
		}
	}
	c.okmsg.Printf("Tree now holds %d entries\n", c.tree.Len())
	c.processShow()
}
