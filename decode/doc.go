// Package decode implements the EventHeader enumerator: the state machine
// that walks one event payload's self-describing field schema exactly once
// and yields a strictly-ordered sequence of typed items.
//
// # Usage
//
//	ctx := decode.NewContext()
//	enum := decode.NewEnumerator(ctx)
//
//	for {
//	    state := enum.StartEvent(providerName, providerOptions, tracepointName, buf)
//	    if state == decode.StateError {
//	        // handle enum.Err(), skip this event
//	    }
//	    for enum.MoveNext() != decode.StateAfterLastItem {
//	        switch enum.State() {
//	        case decode.StateValue, decode.StateArrayValue:
//	            name, item, value := enum.Name(), enum.ItemType(), enum.ItemValue()
//	            // format/route (name, item, value)
//	        }
//	        if enum.State() == decode.StateError {
//	            break
//	        }
//	    }
//	}
//
// Context owns the reusable field-frame stack; it is meant to be constructed
// once per decoding goroutine and reused across many StartEvent/MoveNext
// loops. Every ItemType and ItemValue the Enumerator exposes is a borrowed
// view into the caller's buffer and into Context's stack: both are
// invalidated by the next MoveNext call and must not be retained.
package decode
