package cmd

import (
	"reflect"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{
			name: "plain words",
			line: "account-list",
			want: []string{"account-list"},
		},
		{
			name: "flags and values",
			line: "deposit -id ACC_1 -amount 50000",
			want: []string{"deposit", "-id", "ACC_1", "-amount", "50000"},
		},
		{
			name: "double quoted name with spaces",
			line: `account-new -name "Tien mat" -type CASH`,
			want: []string{"account-new", "-name", "Tien mat", "-type", "CASH"},
		},
		{
			name: "single quotes",
			line: "account-find -q 'tiet kiem'",
			want: []string{"account-find", "-q", "tiet kiem"},
		},
		{
			name: "empty quoted argument survives",
			line: `record -note ""`,
			want: []string{"record", "-note", ""},
		},
		{
			name: "collapsed whitespace",
			line: "  tx   -id   ACC_1  ",
			want: []string{"tx", "-id", "ACC_1"},
		},
		{
			name: "empty line",
			line: "   ",
			want: nil,
		},
		{
			name:    "unterminated quote",
			line:    `account-new -name "Tien mat`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitArgs(tc.line)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("SplitArgs(%q) = %v, want error", tc.line, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitArgs(%q) returned unexpected error: %v", tc.line, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitArgs(%q) = %#v, want %#v", tc.line, got, tc.want)
			}
		})
	}
}
