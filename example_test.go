package chemkit_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/chemkit/chemkit"
)

func ExampleReaderFactory_DetectFormat() {
	factory := chemkit.NewReaderFactory()

	format, err := factory.DetectFormat(strings.NewReader("HEADER    CRAMBIN\nATOM      1  N   THR A   1\n"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(format)
	fmt.Println(format.Name())
	fmt.Println(format.Implemented())
	// Output:
	// pdb
	// Protein Data Bank
	// false
}

func ExampleReaderFactory_CreateReader() {
	factory := chemkit.NewReaderFactory()

	reader, err := factory.CreateReader(strings.NewReader("CCO\n"))
	if err != nil {
		log.Fatal(err)
	}

	record, err := reader.Read()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(reader.Format())
	fmt.Println(len(record.Molecule.Atoms), "atoms")
	// Output:
	// smiles
	// 3 atoms
}

func ExampleReaderFactory_GuessFormat() {
	factory := chemkit.NewReaderFactory()

	name, err := factory.GuessFormat(strings.NewReader("no chemistry here\n"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(name)
	// Output:
	// Format undetermined
}
