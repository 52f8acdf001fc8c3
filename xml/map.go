package xml

// mapEntryWrapper is the default member wrapper start element for XML Map entry
var mapEntryWrapper = StartElement{
	Name: Name{Local: "entry"},
}

// Map represents the encoding of a XML map type
type Map struct {
	w       writer
	scratch *[]byte

	// entryStart/entryEnd wrap each Entry(): the literal `entry` element
	// for a wrapped map, or the map's own field element for a flattened
	// map.
	entryStart *StartElement
	entryEnd   *EndElement

	// mapEnd is the map's own closing element; nil for a flattened map,
	// since there each entry already repeats (and closes) the field
	// element itself.
	mapEnd *EndElement
}

// newMap returns a map encoder which sets the default map
// entry wrapper to `entry`.
//
// for eg. someMap : {{key:"abc", value:"123"}} is represented as
// <someMap><entry><key>abc</key><value>123</value></entry></someMap>
func newMap(w writer, scratch *[]byte, mapEnd *EndElement) *Map {
	start := mapEntryWrapper
	end := start.End()
	return &Map{w: w, scratch: scratch, entryStart: &start, entryEnd: &end, mapEnd: mapEnd}
}

// newFlattenedMap returns a map encoder. It takes in the member start and
// end elements as arguments; those elements wrap each entry of the
// flattened map.
//
// for eg. an array `someMap : {{key:"abc", value:"123"}}` is represented as
// `<someMap><key>abc</key><value>123</value></someMap>`.
func newFlattenedMap(w writer, scratch *[]byte, entryStart *StartElement, entryEnd *EndElement) *Map {
	return &Map{w: w, scratch: scratch, entryStart: entryStart, entryEnd: entryEnd}
}

// Entry opens a new map entry and returns an Object encoder for its
// `key`/`value` children; the Object's Close writes the entry's closing
// tag.
func (m *Map) Entry() *Object {
	writeStartElement(m.w, m.entryStart)
	return newObject(m.w, m.scratch, m.entryEnd)
}

// Close closes the map. For a flattened map this is a no-op.
func (m *Map) Close() {
	writeEndElement(m.w, m.mapEnd)
}
