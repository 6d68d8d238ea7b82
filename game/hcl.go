package game

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/clubs/poker"
)

// configFile is the HCL schema for table configuration files: one
// labelled table block per rule set.
type configFile struct {
	Tables []tableBlock `hcl:"table,block"`
}

type tableBlock struct {
	Name                  string   `hcl:"name,label"`
	NumPlayers            int      `hcl:"num_players"`
	NumStreets            int      `hcl:"num_streets"`
	Blinds                []int    `hcl:"blinds,optional"`
	Antes                 []int    `hcl:"antes,optional"`
	RaiseSizes            []string `hcl:"raise_sizes,optional"`
	NumRaises             []string `hcl:"num_raises,optional"`
	NumSuits              int      `hcl:"num_suits"`
	NumRanks              int      `hcl:"num_ranks"`
	NumHoleCards          int      `hcl:"num_hole_cards"`
	NumCommunityCards     []int    `hcl:"num_community_cards,optional"`
	NumCardsForHand       int      `hcl:"num_cards_for_hand"`
	MandatoryNumHoleCards int      `hcl:"mandatory_num_hole_cards,optional"`
	StartStack            int      `hcl:"start_stack"`
	LowEndStraight        *bool    `hcl:"low_end_straight,optional"`
	Order                 []string `hcl:"order,optional"`
}

// LoadConfigs reads table configurations from an HCL file, keyed by the
// table block label. Raise sizes and caps are written as strings
// ("pot", "inf" or a number); the hand category order uses the
// two-letter tags.
//
//	table "leduc" {
//	  num_players = 2
//	  num_streets = 2
//	  antes       = [1]
//	  raise_sizes = ["2"]
//	  num_raises  = ["2"]
//	  ...
//	}
func LoadConfigs(path string) (map[string]Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var parsed configFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	configs := make(map[string]Config, len(parsed.Tables))
	for _, block := range parsed.Tables {
		cfg, err := block.config()
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", block.Name, err)
		}
		configs[block.Name] = cfg
	}
	return configs, nil
}

func (b tableBlock) config() (Config, error) {
	cfg := Config{
		NumPlayers:            b.NumPlayers,
		NumStreets:            b.NumStreets,
		Blinds:                b.Blinds,
		Antes:                 b.Antes,
		NumSuits:              b.NumSuits,
		NumRanks:              b.NumRanks,
		NumHoleCards:          b.NumHoleCards,
		NumCommunityCards:     b.NumCommunityCards,
		NumCardsForHand:       b.NumCardsForHand,
		MandatoryNumHoleCards: b.MandatoryNumHoleCards,
		StartStack:            b.StartStack,
		NoLowEndStraight:      b.LowEndStraight != nil && !*b.LowEndStraight,
	}
	for _, raw := range b.RaiseSizes {
		size, err := ParseRaiseSize(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.RaiseSizes = append(cfg.RaiseSizes, size)
	}
	for _, raw := range b.NumRaises {
		raises, err := ParseRaiseCap(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.NumRaises = append(cfg.NumRaises, raises)
	}
	for _, tag := range b.Order {
		cat, err := poker.ParseCategory(tag)
		if err != nil {
			return Config{}, err
		}
		cfg.Order = append(cfg.Order, cat)
	}
	return cfg, nil
}
