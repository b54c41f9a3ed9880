// Command pipedit is the operator console for authoring pip layouts.
// It drives one editor session over stdin, writes the live preview SVG
// to a file after every edit, and commits ranks into the configured
// layout store.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"cardtable/editor"
	"cardtable/internal/layoutstore"
)

func main() {
	_ = godotenv.Load()

	previewPath := flag.String("preview", "preview.svg", "file the live preview SVG is written to")
	flag.Parse()

	store, mode, err := layoutstore.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("[PipEdit] Failed to init layout store: %v", err)
	}
	defer store.Close()
	fmt.Printf("layout store mode: %s\n", mode)

	ed := editor.New(layoutstore.NewSaver(store, layoutstore.ActiveLayoutName))
	writePreview(ed, *previewPath)
	printState(ed)

	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			fmt.Print("> ")
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "rank":
			if len(args) != 1 {
				fmt.Println("usage: rank <2..10|A|J|Q|K>")
				break
			}
			if err := ed.SelectRank(args[0]); err != nil {
				fmt.Println(err)
				break
			}
			printState(ed)

		case "add":
			ed.AddPip()
			printState(ed)

		case "rm":
			i, ok := parseIndex(args)
			if !ok {
				fmt.Println("usage: rm <index>")
				break
			}
			if err := ed.RemovePip(i); err != nil {
				fmt.Println(err)
				break
			}
			printState(ed)

		case "x", "y":
			if len(args) != 2 {
				fmt.Printf("usage: %s <index> <value>\n", cmd)
				break
			}
			i, ok := parseIndex(args[:1])
			v, verr := strconv.ParseFloat(args[1], 64)
			if !ok || verr != nil {
				fmt.Printf("usage: %s <index> <value>\n", cmd)
				break
			}
			if cmd == "x" {
				err = ed.SetPipX(i, v)
			} else {
				err = ed.SetPipY(i, v)
			}
			if err != nil {
				fmt.Println(err)
				break
			}
			printState(ed)

		case "scale":
			if len(args) != 1 {
				fmt.Println("usage: scale <value>")
				break
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				fmt.Println("usage: scale <value>")
				break
			}
			if err := ed.SetScale(v); err != nil {
				fmt.Println(err)
				break
			}
			printState(ed)

		case "list":
			printState(ed)

		case "commit":
			if err := ed.Commit(); err != nil {
				fmt.Println(err)
				break
			}
			fmt.Printf("committed rank %s\n", ed.Rank())

		case "reset":
			ed.Reset()
			printState(ed)

		case "export":
			doc, err := ed.Export()
			if err != nil {
				fmt.Println(err)
				break
			}
			if len(args) == 1 {
				if err := os.WriteFile(args[0], doc, 0o644); err != nil {
					fmt.Println(err)
					break
				}
				fmt.Printf("wrote %s\n", args[0])
			} else {
				fmt.Println(string(doc))
			}

		case "import":
			if len(args) != 1 {
				fmt.Println("usage: import <file>")
				break
			}
			doc, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Println(err)
				break
			}
			if err := ed.Import(doc); err != nil {
				fmt.Println(err)
				break
			}
			printState(ed)

		case "quit", "exit":
			return

		case "help":
			printHelp()

		default:
			fmt.Printf("unknown command %q (try help)\n", cmd)
		}

		writePreview(ed, *previewPath)
		fmt.Print("> ")
	}
}

func parseIndex(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return i, true
}

func printState(ed *editor.Editor) {
	fmt.Printf("rank %s, scale %v\n", ed.Rank(), ed.Scale())
	for i, p := range ed.Pips() {
		fmt.Printf("  [%d] x=%v y=%v\n", i, p.X, p.Y)
	}
}

func writePreview(ed *editor.Editor, path string) {
	if err := os.WriteFile(path, []byte(ed.Preview()), 0o644); err != nil {
		fmt.Printf("preview write failed: %v\n", err)
	}
}

func printHelp() {
	fmt.Println(`commands:
  rank <r>        select rank (2..10, A, J, Q, K)
  add             add a pip at the canvas center
  rm <i>          remove pip i
  x <i> <v>       set pip i horizontal position
  y <i> <v>       set pip i vertical position
  scale <v>       set the global scale for this rank
  list            show the working pip list
  commit          write this rank into the layout and save
  reset           reload the default layout
  export [file]   print or write the layout document
  import <file>   replace the layout from a document
  quit            leave the session`)
}
