package main

import (
	"os"
	"os/exec"

	"github.com/goyek/goyek/v2"
)

func run(a *goyek.A, name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		a.Error(err)
	}
}

var fmtTask = goyek.Define(goyek.Task{
	Name:  "fmt",
	Usage: "Run gofmt on all packages",
	Action: func(a *goyek.A) {
		run(a, "gofmt", "-l", "-w", ".")
	},
})

var vet = goyek.Define(goyek.Task{
	Name:  "vet",
	Usage: "Run go vet on all packages",
	Action: func(a *goyek.A) {
		run(a, "go", "vet", "./...")
	},
})

var test = goyek.Define(goyek.Task{
	Name:  "test",
	Usage: "Run all tests",
	Action: func(a *goyek.A) {
		run(a, "go", "test", "./...")
	},
})

var build = goyek.Define(goyek.Task{
	Name:  "build",
	Usage: "Build both generator binaries",
	Action: func(a *goyek.A) {
		run(a, "go", "build", "-o", "bin/create-standalone", "./cmd/create-standalone")
		run(a, "go", "build", "-o", "bin/generate-docs", "./cmd/generate-docs")
	},
})

var all = goyek.Define(goyek.Task{
	Name:  "all",
	Usage: "fmt, vet, test and build",
	Deps:  goyek.Deps{fmtTask, vet, test, build},
})

func main() {
	goyek.SetDefault(all)
	goyek.Main(os.Args[1:])
}
