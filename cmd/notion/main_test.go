package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/notion"
)

func TestParseBlockID(t *testing.T) {
	page := notion.MustParseBlockID("67ace61a7fd24ab78e892b1dc9b252e4")
	block := notion.MustParseBlockID("6e9612c81c7d4356ba9153eab009e6f4")

	cases := map[string]notion.BlockID{
		"67ace61a-7fd2-4ab7-8e89-2b1dc9b252e4":                                                             page,
		"6e9612c81c7d4356ba9153eab009e6f4":                                                                 block,
		"https://www.notion.so/erics118/My-Page-67ace61a7fd24ab78e892b1dc9b252e4":                          page,
		"notion.so/erics118/67ace61a7fd24ab78e892b1dc9b252e4?pvs=4":                                        page,
		"https://www.notion.so/erics118/67ace61a7fd24ab78e892b1dc9b252e4#6e9612c81c7d4356ba9153eab009e6f4": block,
	}
	for s, want := range cases {
		got, err := parseBlockID(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := parseBlockID("https://www.notion.so/erics118")
	assert.Error(t, err)
}
