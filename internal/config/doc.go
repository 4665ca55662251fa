// Package config builds the filter configuration for zha-logfmt.
//
// Configuration is a fixed set of three values read once at startup. There is
// no configuration file: values come from the environment and may be
// overridden on the command line.
//
// # Environment
//
//   - DEVICE_NWK: Zigbee short address of the target device (e.g. "0x92A7")
//   - DEVICE_IEEE: IEEE/EUI-64 address of the target device
//   - MODULE_FILTER: pipe-separated module names
//     (default "zigpy|zha|bellows|zigpy_znp|zigpy_deconz")
//
// Empty device addresses mean "any device". Module entries are trimmed and
// empty entries are dropped; an empty list falls back to DefaultModules.
//
// # Usage Example
//
//	cfg, err := config.Load(config.Overrides{DeviceNWK: &nwkFlag})
//	if err != nil {
//	    return err
//	}
//	filter := logfmt.NewFilter(cfg)
//
// The returned *Config is shared read-only between the filter and formatter.
package config
