// cmd/obtreerepl/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/harudb/obtree/obtree"
	"github.com/harudb/obtree/obtreecodec"
)

func main() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".obtree_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	m := obtree.NewOrdered[string, string]()

	fmt.Println("obtree REPL — INSERT/GET/REMOVE/GETIDX/RANK/FIRST/LAST/LEN/SPLIT/SAVE/LOAD/HELP/EXIT")

	for {
		input, err := line.Prompt("obtree> ")
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "exit" || input == "EXIT" {
			break
		}

		if err := dispatch(m, input); err != nil {
			fmt.Println("error:", err)
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func dispatch(m *obtree.Map[string, string], input string) error {
	fields := strings.Fields(input)
	cmd := strings.ToUpper(fields[0])
	args := fields[1:]

	switch cmd {
	case "HELP":
		fmt.Println("INSERT key value | GET key | REMOVE key | GETIDX rank | RANK key | FIRST | LAST | LEN | SPLIT key | SAVE file | LOAD file")
	case "INSERT":
		if len(args) != 2 {
			return fmt.Errorf("usage: INSERT key value")
		}
		wasNew := m.Insert(args[0], args[1])
		fmt.Println("new:", wasNew)
	case "GET":
		if len(args) != 1 {
			return fmt.Errorf("usage: GET key")
		}
		v, ok := m.Get(args[0])
		if !ok {
			fmt.Println("(not found)")
			return nil
		}
		fmt.Println(v)
	case "REMOVE":
		if len(args) != 1 {
			return fmt.Errorf("usage: REMOVE key")
		}
		v, ok := m.Remove(args[0])
		if !ok {
			fmt.Println("(not found)")
			return nil
		}
		fmt.Println("removed:", v)
	case "GETIDX":
		if len(args) != 1 {
			return fmt.Errorf("usage: GETIDX rank")
		}
		r, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		k, v, ok := m.GetKeyValueByIndex(r)
		if !ok {
			fmt.Println("(out of range)")
			return nil
		}
		fmt.Println(k, "=", v)
	case "RANK":
		if len(args) != 1 {
			return fmt.Errorf("usage: RANK key")
		}
		r, ok := m.RankOfKey(args[0])
		if !ok {
			fmt.Println("(not found)")
			return nil
		}
		fmt.Println(r)
	case "FIRST":
		k, v, ok := m.FirstKeyValue()
		if !ok {
			fmt.Println("(empty)")
			return nil
		}
		fmt.Println(k, "=", v)
	case "LAST":
		k, v, ok := m.LastKeyValue()
		if !ok {
			fmt.Println("(empty)")
			return nil
		}
		fmt.Println(k, "=", v)
	case "LEN":
		fmt.Println(m.Len())
	case "SPLIT":
		if len(args) != 1 {
			return fmt.Errorf("usage: SPLIT key")
		}
		right := m.SplitOff(args[0])
		fmt.Println("left:", m.Len(), "right:", right.Len())
	case "SAVE":
		if len(args) != 1 {
			return fmt.Errorf("usage: SAVE file")
		}
		data, err := obtreecodec.Encode[string, string](m)
		if err != nil {
			return err
		}
		return os.WriteFile(args[0], data, 0o644)
	case "LOAD":
		if len(args) != 1 {
			return fmt.Errorf("usage: LOAD file")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		loaded, err := obtreecodec.Decode[string, string](data)
		if err != nil {
			return err
		}
		*m = *loaded
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
