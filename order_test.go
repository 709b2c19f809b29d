package stockbroker

import "testing"

func TestParseOrder(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		wantKind ErrorKind
		wantErr  bool
		want     Order
	}{
		{
			name: "canonical line",
			line: "buy AAPL 150.00 100",
			want: Order{Action: "buy", StockCode: "AAPL", Volume: 100},
		},
		{
			name: "mixed case canonicalized",
			line: "SELL goog 2800.50 25",
			want: Order{Action: "sell", StockCode: "GOOG", Volume: 25},
		},
		{
			name: "extra whitespace tolerated",
			line: "  buy   AAPL   150.00   100  ",
			want: Order{Action: "buy", StockCode: "AAPL", Volume: 100},
		},
		{
			name: "unknown action still parses",
			line: "hold AAPL 150.00 100",
			want: Order{Action: "hold", StockCode: "AAPL", Volume: 100},
		},
		{name: "three fields", line: "buy AAPL 150.00", wantErr: true, wantKind: MalformedOrder},
		{name: "five fields", line: "buy AAPL 150.00 100 x", wantErr: true, wantKind: MalformedOrder},
		{name: "bad price", line: "buy AAPL abc 100", wantErr: true, wantKind: MalformedOrder},
		{name: "bad volume", line: "buy AAPL 150.00 ten", wantErr: true, wantKind: MalformedOrder},
		{name: "float volume", line: "buy AAPL 150.00 10.5", wantErr: true, wantKind: MalformedOrder},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseOrder(tc.line)
			if tc.wantErr {
				kind, ok := Kind(err)
				if !ok {
					t.Fatalf("ParseOrder(%q) = %v, want a rejection", tc.line, err)
				}
				if kind != tc.wantKind {
					t.Errorf("ParseOrder(%q) kind = %v, want %v", tc.line, kind, tc.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrder(%q) failed: %v", tc.line, err)
			}
			if got.Action != tc.want.Action || got.StockCode != tc.want.StockCode || got.Volume != tc.want.Volume {
				t.Errorf("ParseOrder(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}
