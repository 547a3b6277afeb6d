// Package ui implements the widgetlab widgets and the root Bubble Tea model.
//
// Widgets:
//   - HeadingView: heading toggled by a "Click Me" button
//   - CounterView: count with Increment and Decrement buttons
//   - InputView / CallbackInputView: controlled text input and its owner
//   - FavouriteInputView: uncontrolled input reporting every change
//   - AnimalListView: static list of animals
//   - AsyncView: remote user record behind a one-shot loader
//
// AppModel hosts the widgets as tabs. Navigation uses a leader key (SPC)
// plus tab/shift+tab; see NewAppModel for the bindings.
package ui
