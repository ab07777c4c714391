package palette

// Subscribe registers fn to run after every document mutation and returns
// an unsubscribe handle. The document itself carries no rendering
// concerns; subscribers re-derive their views (filter, sort, render) on
// each call.
func (d *Document) Subscribe(fn func()) func() {
	if d.subs == nil {
		d.subs = make(map[int]func())
	}
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	return func() {
		delete(d.subs, id)
	}
}

// Notify wakes all subscribers. Document mutation methods call it
// themselves; callers that edit a color's keyframe track directly (the
// animation engine operates on entries, not the document) call it once
// after the edit.
func (d *Document) Notify() {
	for _, fn := range d.subs {
		fn()
	}
}
