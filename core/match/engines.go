// core/match/engines.go
// Engine registrations (name → adapter). The registry replaces switch
// statements at the CLI layer, one entry per algorithm.
package match

import (
	"gapscan-core/bmoore"
	"gapscan-core/dfagap"
	"gapscan-core/kmp"
	"gapscan-core/regexgap"
	"gapscan-core/shiftor"
)

type kmpEngine struct{}

func (kmpEngine) Name() string { return "kmp" }
func (kmpEngine) Compile(pattern []byte) (Counter, error) {
	c, err := kmp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return c, nil
}

type bmooreEngine struct{}

func (bmooreEngine) Name() string { return "bm" }
func (bmooreEngine) Compile(pattern []byte) (Counter, error) {
	c, err := bmoore.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return c, nil
}

type shiftorEngine struct{}

func (shiftorEngine) Name() string { return "shiftor" }
func (shiftorEngine) Compile(pattern []byte) (Counter, error) {
	c, err := shiftor.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return c, nil
}

type dfagapEngine struct{}

func (dfagapEngine) Name() string { return "dfagap" }
func (dfagapEngine) Compile(pattern []byte, k int) (Counter, error) {
	c, err := dfagap.Compile(pattern, k)
	if err != nil {
		return nil, err
	}
	return c, nil
}

type regexgapEngine struct{}

func (regexgapEngine) Name() string { return "regexp" }
func (regexgapEngine) Compile(pattern []byte, k int) (Counter, error) {
	c, err := regexgap.Compile(pattern, k)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func init() {
	Register(kmpEngine{})
	Register(bmooreEngine{})
	Register(shiftorEngine{})
	RegisterGap(dfagapEngine{})
	RegisterGap(regexgapEngine{})
}
