package zigbee

import "testing"

func TestIntFieldExtract(t *testing.T) {
	line := `AF.IncomingMsg.Callback(GroupId=0, ClusterId=6, SrcAddr=0x1234, SrcEndpoint=1, DstEndpoint=2, LQI=200)`

	tests := []struct {
		name  string
		field IntField
		def   int
		want  int
	}{
		{"cluster", ClusterIDField, NoCluster, 6},
		{"source endpoint", SrcEndpointField, 0, 1},
		{"destination endpoint", DstEndpointField, 0, 2},
		{"lqi", LQIField, -1, 200},
		{"missing tsn uses default", TSNField, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Extract(line, tt.def); got != tt.want {
				t.Errorf("%s.Extract() = %d, want %d", tt.field.Label, got, tt.want)
			}
		})
	}
}

func TestIntFieldExtractOverflow(t *testing.T) {
	line := "ClusterId=99999999999999999999999999"
	if got := ClusterIDField.Extract(line, NoCluster); got != NoCluster {
		t.Errorf("Extract() = %d, want %d", got, NoCluster)
	}
}

func TestHexFieldExtract(t *testing.T) {
	tests := []struct {
		name  string
		field HexField
		line  string
		want  string
	}{
		{"source address", SrcAddrField, "SrcAddr=0x92a7, x", "0x92a7"},
		{"destination address", AddressField, "DstAddrModeAddress(mode=<AddrMode.NWK: 2>, address=0xABCD)", "0xABCD"},
		{"decimal value is not a token", SrcAddrField, "SrcAddr=1234", ""},
		{"missing", AddressField, "nothing here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Extract(tt.line); got != tt.want {
				t.Errorf("%s.Extract(%q) = %q, want %q", tt.field.Label, tt.line, got, tt.want)
			}
		})
	}
}
