package zigbee

import "fmt"

// NoCluster marks a line that carries no ClusterId field.
const NoCluster = -1

// Well-known ZCL cluster identifiers
const (
	ClusterBasic            = 0x0000
	ClusterPowerConfig      = 0x0001
	ClusterIdentify         = 0x0003
	ClusterGroups           = 0x0004
	ClusterScenes           = 0x0005
	ClusterOnOff            = 0x0006
	ClusterLevelControl     = 0x0008
	ClusterColorControl     = 0x0300
	ClusterIlluminance      = 0x0400
	ClusterTemperature      = 0x0402
	ClusterHumidity         = 0x0405
	ClusterOccupancy        = 0x0406
	ClusterIASZone          = 0x0500
	ClusterMetering         = 0x0702
	ClusterElectricalMeas   = 0x0B04
	ClusterTuyaManufacturer = 0xEF00 // 61184, Tuya private data-point cluster
)

var clusterNames = map[int]string{
	ClusterBasic:            "Basic",
	ClusterPowerConfig:      "PowerConfig",
	ClusterIdentify:         "Identify",
	ClusterGroups:           "Groups",
	ClusterScenes:           "Scenes",
	ClusterOnOff:            "OnOff",
	ClusterLevelControl:     "LevelControl",
	ClusterColorControl:     "ColorControl",
	ClusterIlluminance:      "Illuminance",
	ClusterTemperature:      "Temperature",
	ClusterHumidity:         "Humidity",
	ClusterOccupancy:        "Occupancy",
	ClusterIASZone:          "IASZone",
	ClusterMetering:         "Metering",
	ClusterElectricalMeas:   "ElectricalMeas",
	ClusterTuyaManufacturer: "TuyaEF00",
}

// ClusterName returns a display string for a cluster identifier.
func ClusterName(id int) string {
	if id < 0 {
		return "0x????"
	}
	if name, ok := clusterNames[id]; ok {
		return fmt.Sprintf("0x%04X (%s)", id, name)
	}
	return fmt.Sprintf("0x%04X", id)
}
