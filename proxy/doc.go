// Package proxy binds declarative descriptions of a runtime class's surface
// to that class.
//
// A Description lists declarations: method invokers, field getters and
// setters, constructor invokers and default behaviors. Descriptions may
// extend other descriptions; the combined declarations are resolved in
// precedence order, most specific first, so a declaration in a description
// shadows the same name in its ancestors.
//
// Factory.Bind resolves every declaration against the target class through a
// remap.Remapper and an introspect.Loader and returns an Object with its own
// dispatch table. Invocation never consults the remapper again.
//
//	levelProxy := proxy.Describe("LevelProxy", proxy.TargetName("net.minecraft.world.level.Level"),
//		proxy.Getter("number", proxy.Receiver()),
//		proxy.Method("name", proxy.Receiver()).Named("Name"),
//	)
//
//	obj, err := factory.Bind(levelProxy)
//	if err != nil {
//		return err
//	}
//
//	n, err := proxy.Invoke[int32](obj, "number", level)
//
// Declarations shaped like Equal(builtin.any) boolean, Hash() int and
// String() builtin.string are never resolved; they compare object identity,
// return 0 and summarize the object.
package proxy
