// Package autocanvas is a small retained-mode scene graph for an
// interactive 2D drawing surface, built on [Ebitengine].
//
// A [Surface] owns an ordered set of elements, a pan/zoom [Camera] and the
// pointer state. It ticks and redraws every element at a fixed rate and
// turns raw pointer press/move/release events into hover, press, click and
// release callbacks on the elements under the pointer.
//
// # Quick start
//
//	s := autocanvas.NewSurface()
//	box := autocanvas.NewRect("box", 100, 100, 80, 40, autocanvas.ColorWhite, autocanvas.RenderOptions{})
//	box.OnClick = func(e autocanvas.Element) { box.MoveBy(50, 0, 300, autocanvas.EaseOutQuad) }
//	s.AddElement(box)
//	autocanvas.Run(s, autocanvas.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// Without a window, implement [Host] and call [Surface.RunHeadless], or
// call [Surface.Refresh] and the On* input methods yourself.
//
// # Camera
//
// Screen coordinates are world*scale + pan. Dragging anywhere pans the
// camera by the total displacement since the press; the wheel zooms about
// the pointer with the scale clamped to the camera's bounds.
//
// # Animation
//
// Element positions and base scale are [Value]s. A Value can be set
// directly, bound to a formula that is re-evaluated on resize, or moved by
// queued [Task]s. Tasks run in insertion order every tick and add up.
//
// # Events
//
// Input is routed from the topmost element down. The first element hit
// claims the event; lower elements still run but are told they missed.
// Hoisted elements are always above non-hoisted ones. A release within
// five pixels of its press is a click: OnClick fires, then OnRelease.
//
// Fired handlers can be mirrored into an ECS through [EntityStore]; see the
// ecs subpackage for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package autocanvas
