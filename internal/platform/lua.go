package platform

import (
	lua "github.com/yuin/gopher-lua"
)

// InjectPlatformTable creates a read-only platform table and injects it into
// the Lua state as a global. This should be called before loading any user
// configuration code, so configs can branch on the host platform.
func InjectPlatformTable(L *lua.LState, info *Info) error {
	platformTable := L.NewTable()

	// Basic OS and architecture
	L.SetField(platformTable, "os", lua.LString(info.OS))
	L.SetField(platformTable, "arch", lua.LString(info.Arch))
	L.SetField(platformTable, "arch_raw", lua.LString(info.ArchRaw))

	// OS booleans
	L.SetField(platformTable, "is_linux", lua.LBool(info.IsLinux()))
	L.SetField(platformTable, "is_macos", lua.LBool(info.IsMacOS()))
	L.SetField(platformTable, "is_windows", lua.LBool(info.IsWindows()))

	// Linux distribution details (nil on non-Linux or when detection failed)
	if info.IsLinux() && info.Platform != "" {
		distroTable := L.NewTable()
		L.SetField(distroTable, "id", lua.LString(info.Platform))
		L.SetField(distroTable, "family", lua.LString(info.Family))
		L.SetField(distroTable, "version", lua.LString(info.Version))
		L.SetField(platformTable, "distro", distroTable)
	} else {
		L.SetField(platformTable, "distro", lua.LNil)
	}

	// Catalog platform identifier, when one exists for this host
	if driverPlatform, err := info.DriverPlatform(); err == nil {
		L.SetField(platformTable, "driver_platform", lua.LString(driverPlatform))
	} else {
		L.SetField(platformTable, "driver_platform", lua.LNil)
	}

	// Expose through an empty proxy so every write hits __newindex,
	// making the table read-only from config code.
	proxy := L.NewTable()
	metaTable := L.NewTable()
	L.SetField(metaTable, "__index", platformTable)
	L.SetField(metaTable, "__newindex", L.NewFunction(func(L *lua.LState) int {
		L.RaiseError("platform table is read-only")
		return 0
	}))
	L.SetMetatable(proxy, metaTable)

	L.SetGlobal("platform", proxy)
	return nil
}
