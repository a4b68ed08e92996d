package schema

import (
	"aethercfg/bitspan"
	"aethercfg/record"
	"aethercfg/setting"
	"aethercfg/tagpath"
)

// Dense setting id enumeration, part of the external error-code
// contract (spec.md §6): ids are assigned in schema-declaration
// order starting at 1 and must never be renumbered.
const (
	DeviceName setting.ID = iota + 1
	USBDetection
	USBIntervalMS

	TimeTriggerEnabled
	TimeSensorTHP
	TimeSensorGyro
	TimeSensorMagnet
	TimeSensorLight
	TimeTriggerIntervalMS
	TimeTriggerLoRaPriority
	TimeTriggerWriteToLoRa
	TimeTriggerWriteToSD

	LightTriggerEnabled
	LightSensorTHP
	LightSensorGyro
	LightSensorMagnet
	LightSensorLight
	LightLowThreshold
	LightHighThreshold
	LightTriggerLoRaPriority
	LightTriggerWriteToLoRa
	LightTriggerWriteToSD

	AccelerationTriggerEnabled
	AccelerationSensorTHP
	AccelerationSensorGyro
	AccelerationSensorMagnet
	AccelerationSensorLight
	AccelerationTriggerLoRaPriority
	AccelerationTriggerWriteToLoRa
	AccelerationTriggerWriteToSD

	OrientationTriggerEnabled
	OrientationSensorTHP
	OrientationSensorGyro
	OrientationSensorMagnet
	OrientationSensorLight
	OrientationTriggerLoRaPriority
	OrientationTriggerWriteToLoRa
	OrientationTriggerWriteToSD
)

// usbModeOptions binds the USB detection FILE-mode labels to their
// MESSAGE-mode discriminants.
var usbModeOptions = []setting.EnumOption{
	{Label: "off", Value: int(record.USBOff)},
	{Label: "on", Value: int(record.USBOn)},
	{Label: "interval", Value: int(record.USBInterval)},
}

func u8(v uint8) setting.Data  { return setting.U8Data(v) }
func u16(v uint16) setting.Data { return setting.U16Data(v) }
func u32(v uint32) setting.Data { return setting.U32Data(v) }

// trigger is the subset of record.Trigger fields every trigger
// sensor-mask/priority/write-to applier needs a pointer to.
type trigger = *record.Trigger

func sensorApplier(field func(trigger) *bool, t func(*record.MasterRecord) trigger) setting.Applier {
	return func(d setting.Data, rec *record.MasterRecord) {
		tr := t(rec)
		*field(tr) = tr.Enabled && d.Bool()
	}
}

func priorityApplier(t func(*record.MasterRecord) trigger) setting.Applier {
	return func(d setting.Data, rec *record.MasterRecord) { t(rec).LoRaPriority = d.U8() }
}

func writeToLoRaApplier(t func(*record.MasterRecord) trigger) setting.Applier {
	return func(d setting.Data, rec *record.MasterRecord) { t(rec).WriteTo.LoRa = d.Bool() }
}

func writeToSDApplier(t func(*record.MasterRecord) trigger) setting.Applier {
	return func(d setting.Data, rec *record.MasterRecord) { t(rec).WriteTo.SD = d.Bool() }
}

func timeT(rec *record.MasterRecord) trigger        { return &rec.Time.Trigger }
func lightT(rec *record.MasterRecord) trigger       { return &rec.Light.Trigger }
func accelerationT(rec *record.MasterRecord) trigger { return &rec.Acceleration.Trigger }
func orientationT(rec *record.MasterRecord) trigger  { return &rec.Orientation.Trigger }

func sensorFields() (thp, gyro, magnet, light func(trigger) *bool) {
	return func(t trigger) *bool { return &t.Sensors.THP },
		func(t trigger) *bool { return &t.Sensors.AccelGyro },
		func(t trigger) *bool { return &t.Sensors.Magnet },
		func(t trigger) *bool { return &t.Sensors.Light }
}

// Default returns the concrete schema table described by spec.md §6's
// bit assignment table, with the device-name/usb settings as flat
// 3-deep tag-tree paths ending in the sentinel-empty slot and the
// per-trigger settings as 4-deep paths (see DESIGN.md for why the
// per-trigger "write-to" container from spec.md §8's S1 example is
// flattened into sibling write-to-lora/write-to-sd leaves here).
//
// Declaration order is part of the external contract (spec.md §4.7,
// §9 Open Question 4): each trigger's "enabled" setting is declared
// immediately before that trigger's sensor-mask settings, so the
// sensor appliers always observe this run's Enabled value.
func Default() *Schema {
	thp, gyro, magnet, light := sensorFields()

	return New(
		setting.New(DeviceName, tagpath.New("aether", "device", "name"), bitspan.None, setting.Optional,
			setting.Name(),
			func(d setting.Data, rec *record.MasterRecord) {
				name := d.String()
				if len(name) > record.MaxDeviceNameLen-1 {
					name = name[:record.MaxDeviceNameLen-1]
				}
				rec.DeviceName = name
			}),

		setting.New(USBDetection, tagpath.New("aether", "usb", "detection"), bitspan.Span{Pos: 24, Width: 2}, setting.Optional,
			setting.Enum(func(v int) setting.Data { return u8(uint8(v)) }, usbModeOptions...),
			func(d setting.Data, rec *record.MasterRecord) { rec.USBDetection = record.USBDetectionMode(d.U8()) }),

		setting.New(USBIntervalMS, tagpath.New("aether", "usb", "interval-ms"), bitspan.Span{Pos: 32, Width: 32}, setting.Optional,
			setting.RangeUnsigned[uint32](0, 3600_000, u32),
			func(d setting.Data, rec *record.MasterRecord) { rec.USBIntervalMS = d.U32() }),

		// time trigger
		setting.New(TimeTriggerEnabled, tagpath.New("aether", "trigger", "time", "enabled"), bitspan.Span{Pos: 26, Width: 1}, setting.Required,
			setting.Bool(),
			func(d setting.Data, rec *record.MasterRecord) { rec.Time.Enabled = d.Bool() }),
		setting.New(TimeSensorTHP, tagpath.New("aether", "trigger", "time", "sensor-thp"), bitspan.Span{Pos: 8, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(thp, timeT)),
		setting.New(TimeSensorGyro, tagpath.New("aether", "trigger", "time", "sensor-gyro"), bitspan.Span{Pos: 9, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(gyro, timeT)),
		setting.New(TimeSensorMagnet, tagpath.New("aether", "trigger", "time", "sensor-magnet"), bitspan.Span{Pos: 10, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(magnet, timeT)),
		setting.New(TimeSensorLight, tagpath.New("aether", "trigger", "time", "sensor-light"), bitspan.Span{Pos: 11, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(light, timeT)),
		setting.New(TimeTriggerIntervalMS, tagpath.New("aether", "trigger", "time", "interval-ms"), bitspan.Span{Pos: 64, Width: 32}, setting.Optional,
			setting.RangeUnsigned[uint32](0, 86_400_000, u32),
			func(d setting.Data, rec *record.MasterRecord) { rec.Time.IntervalMS = d.U32() }),
		setting.New(TimeTriggerLoRaPriority, tagpath.New("aether", "trigger", "time", "lora-priority"), bitspan.Span{Pos: 128, Width: 2}, setting.Optional,
			setting.RangeUnsigned[uint8](0, 3, u8), priorityApplier(timeT)),
		setting.New(TimeTriggerWriteToLoRa, tagpath.New("aether", "trigger", "time", "write-to-lora"), bitspan.Span{Pos: 130, Width: 1}, setting.Optional,
			setting.Bool(), writeToLoRaApplier(timeT)),
		setting.New(TimeTriggerWriteToSD, tagpath.New("aether", "trigger", "time", "write-to-sd"), bitspan.Span{Pos: 131, Width: 1}, setting.Optional,
			setting.Bool(), writeToSDApplier(timeT)),

		// light trigger
		setting.New(LightTriggerEnabled, tagpath.New("aether", "trigger", "light", "enabled"), bitspan.Span{Pos: 27, Width: 1}, setting.Optional,
			setting.Bool(),
			func(d setting.Data, rec *record.MasterRecord) { rec.Light.Enabled = d.Bool() }),
		setting.New(LightSensorTHP, tagpath.New("aether", "trigger", "light", "sensor-thp"), bitspan.Span{Pos: 12, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(thp, lightT)),
		setting.New(LightSensorGyro, tagpath.New("aether", "trigger", "light", "sensor-gyro"), bitspan.Span{Pos: 13, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(gyro, lightT)),
		setting.New(LightSensorMagnet, tagpath.New("aether", "trigger", "light", "sensor-magnet"), bitspan.Span{Pos: 14, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(magnet, lightT)),
		setting.New(LightSensorLight, tagpath.New("aether", "trigger", "light", "sensor-light"), bitspan.Span{Pos: 15, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(light, lightT)),
		setting.New(LightLowThreshold, tagpath.New("aether", "trigger", "light", "low-threshold"), bitspan.Span{Pos: 112, Width: 16}, setting.Optional,
			setting.RangeUnsigned[uint16](0, 65535, u16),
			func(d setting.Data, rec *record.MasterRecord) { rec.Light.LowThreshold = d.U16() }),
		setting.New(LightHighThreshold, tagpath.New("aether", "trigger", "light", "high-threshold"), bitspan.Span{Pos: 96, Width: 16}, setting.Optional,
			setting.RangeUnsigned[uint16](0, 65535, u16),
			func(d setting.Data, rec *record.MasterRecord) { rec.Light.HighThreshold = d.U16() }),
		setting.New(LightTriggerLoRaPriority, tagpath.New("aether", "trigger", "light", "lora-priority"), bitspan.Span{Pos: 132, Width: 2}, setting.Optional,
			setting.RangeUnsigned[uint8](0, 3, u8), priorityApplier(lightT)),
		setting.New(LightTriggerWriteToLoRa, tagpath.New("aether", "trigger", "light", "write-to-lora"), bitspan.Span{Pos: 134, Width: 1}, setting.Optional,
			setting.Bool(), writeToLoRaApplier(lightT)),
		setting.New(LightTriggerWriteToSD, tagpath.New("aether", "trigger", "light", "write-to-sd"), bitspan.Span{Pos: 135, Width: 1}, setting.Optional,
			setting.Bool(), writeToSDApplier(lightT)),

		// acceleration trigger
		setting.New(AccelerationTriggerEnabled, tagpath.New("aether", "trigger", "acceleration", "enabled"), bitspan.Span{Pos: 28, Width: 1}, setting.Optional,
			setting.Bool(),
			func(d setting.Data, rec *record.MasterRecord) { rec.Acceleration.Enabled = d.Bool() }),
		setting.New(AccelerationSensorTHP, tagpath.New("aether", "trigger", "acceleration", "sensor-thp"), bitspan.Span{Pos: 16, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(thp, accelerationT)),
		setting.New(AccelerationSensorGyro, tagpath.New("aether", "trigger", "acceleration", "sensor-gyro"), bitspan.Span{Pos: 17, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(gyro, accelerationT)),
		setting.New(AccelerationSensorMagnet, tagpath.New("aether", "trigger", "acceleration", "sensor-magnet"), bitspan.Span{Pos: 18, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(magnet, accelerationT)),
		setting.New(AccelerationSensorLight, tagpath.New("aether", "trigger", "acceleration", "sensor-light"), bitspan.Span{Pos: 19, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(light, accelerationT)),
		setting.New(AccelerationTriggerLoRaPriority, tagpath.New("aether", "trigger", "acceleration", "lora-priority"), bitspan.Span{Pos: 136, Width: 2}, setting.Optional,
			setting.RangeUnsigned[uint8](0, 3, u8), priorityApplier(accelerationT)),
		setting.New(AccelerationTriggerWriteToLoRa, tagpath.New("aether", "trigger", "acceleration", "write-to-lora"), bitspan.Span{Pos: 138, Width: 1}, setting.Optional,
			setting.Bool(), writeToLoRaApplier(accelerationT)),
		setting.New(AccelerationTriggerWriteToSD, tagpath.New("aether", "trigger", "acceleration", "write-to-sd"), bitspan.Span{Pos: 139, Width: 1}, setting.Optional,
			setting.Bool(), writeToSDApplier(accelerationT)),

		// orientation trigger
		setting.New(OrientationTriggerEnabled, tagpath.New("aether", "trigger", "orientation", "enabled"), bitspan.Span{Pos: 29, Width: 1}, setting.Optional,
			setting.Bool(),
			func(d setting.Data, rec *record.MasterRecord) { rec.Orientation.Enabled = d.Bool() }),
		setting.New(OrientationSensorTHP, tagpath.New("aether", "trigger", "orientation", "sensor-thp"), bitspan.Span{Pos: 20, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(thp, orientationT)),
		setting.New(OrientationSensorGyro, tagpath.New("aether", "trigger", "orientation", "sensor-gyro"), bitspan.Span{Pos: 21, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(gyro, orientationT)),
		setting.New(OrientationSensorMagnet, tagpath.New("aether", "trigger", "orientation", "sensor-magnet"), bitspan.Span{Pos: 22, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(magnet, orientationT)),
		setting.New(OrientationSensorLight, tagpath.New("aether", "trigger", "orientation", "sensor-light"), bitspan.Span{Pos: 23, Width: 1}, setting.Optional,
			setting.Bool(), sensorApplier(light, orientationT)),
		setting.New(OrientationTriggerLoRaPriority, tagpath.New("aether", "trigger", "orientation", "lora-priority"), bitspan.Span{Pos: 140, Width: 2}, setting.Optional,
			setting.RangeUnsigned[uint8](0, 3, u8), priorityApplier(orientationT)),
		setting.New(OrientationTriggerWriteToLoRa, tagpath.New("aether", "trigger", "orientation", "write-to-lora"), bitspan.Span{Pos: 142, Width: 1}, setting.Optional,
			setting.Bool(), writeToLoRaApplier(orientationT)),
		setting.New(OrientationTriggerWriteToSD, tagpath.New("aether", "trigger", "orientation", "write-to-sd"), bitspan.Span{Pos: 143, Width: 1}, setting.Optional,
			setting.Bool(), writeToSDApplier(orientationT)),
	)
}
